package ticket

import (
	"fmt"
	"strings"
)

const (
	tuesdayDiscount  = 0.20
	nightSurcharge   = 0.10
	nightHour        = 20
	childDiscount    = 0.50
	studentDiscount  = 0.30
	comboDiscount    = 0.15
	childMaxAge      = 12
	unaccompaniedAge = 8
)

// Ticket is a single sold admission. The set of implementations is
// closed: General, Child, Student and ComboPromo.
type Ticket interface {
	Number() int
	Screening() string
	Seat() string
	BasePrice() float64
	SetBasePrice(price float64)
	Snacks() []string

	// FinalPrice computes the amount to pay for this ticket.
	FinalPrice() float64
	// Eligible reports whether the variant's sale requirements hold.
	// Price computation stays valid even when Eligible is false; the
	// sales layer is the one that refuses the sale.
	Eligible() bool
	// Receipt renders the printable ticket summary.
	Receipt() string
}

// base carries the fields every ticket shares. Fields are unexported;
// the orchestrator goes through the accessors.
type base struct {
	number    int
	screening string
	seat      string
	basePrice float64
	snacks    []string
}

func (b *base) Number() int       { return b.number }
func (b *base) Screening() string { return b.screening }
func (b *base) Seat() string      { return b.seat }
func (b *base) BasePrice() float64 { return b.basePrice }

// SetBasePrice updates the base price. Non-positive values are
// silently ignored and the old price is retained.
func (b *base) SetBasePrice(price float64) {
	if price > 0 {
		b.basePrice = price
	}
}

func (b *base) Snacks() []string { return b.snacks }

// Eligible is the default rule: no requirements.
func (b *base) Eligible() bool { return true }

// priceWithDayDiscount applies the Tuesday promotion (20% off) to the
// base price. Shared by variants, not a sellable rule on its own.
func (b *base) priceWithDayDiscount(dayOfWeek string) float64 {
	discount := 0.0
	if strings.EqualFold(dayOfWeek, "tuesday") {
		discount = tuesdayDiscount
	}
	return b.basePrice * (1 - discount)
}

func (b *base) receipt(finalPrice float64) string {
	snacks := "None"
	if len(b.snacks) > 0 {
		snacks = strings.Join(b.snacks, ",")
	}
	var sb strings.Builder
	sb.WriteString("==== CINEMA TICKET ====\n")
	fmt.Fprintf(&sb, "Number: %d\n", b.number)
	fmt.Fprintf(&sb, "Screening: %s\n", b.screening)
	fmt.Fprintf(&sb, "Seat: %s\n", b.seat)
	fmt.Fprintf(&sb, "Snacks: %s\n", snacks)
	fmt.Fprintf(&sb, "Total: $%.2f\n", finalPrice)
	return sb.String()
}

// General is the standard admission: Tuesday discount plus a 10%
// night surcharge for showtimes at 20:00 or later. The surcharge is
// applied on the already discounted price.
type General struct {
	base
	dayOfWeek string
	hour      int
}

func NewGeneral(number int, screening, seat string, basePrice float64, dayOfWeek string, hour int) *General {
	return &General{
		base:      base{number: number, screening: screening, seat: seat, basePrice: basePrice},
		dayOfWeek: dayOfWeek,
		hour:      hour,
	}
}

func (t *General) FinalPrice() float64 {
	price := t.priceWithDayDiscount(t.dayOfWeek)
	if t.hour >= nightHour {
		price *= 1 + nightSurcharge
	}
	return price
}

func (t *General) Receipt() string { return t.receipt(t.FinalPrice()) }

// Child admission: flat 50% off, day rules do not apply.
type Child struct {
	base
	age       int
	withAdult bool
}

func NewChild(number int, screening, seat string, basePrice float64, age int, withAdult bool) *Child {
	return &Child{
		base:      base{number: number, screening: screening, seat: seat, basePrice: basePrice},
		age:       age,
		withAdult: withAdult,
	}
}

func (t *Child) FinalPrice() float64 {
	return t.basePrice * (1 - childDiscount)
}

// Eligible requires age under 12; under 8 additionally requires an
// accompanying adult.
func (t *Child) Eligible() bool {
	if t.age >= childMaxAge {
		return false
	}
	if t.age < unaccompaniedAge && !t.withAdult {
		return false
	}
	return true
}

func (t *Child) Receipt() string { return t.receipt(t.FinalPrice()) }

// Student admission: 30% off during special hours only.
type Student struct {
	base
	cardID      string
	specialHour bool
}

func NewStudent(number int, screening, seat string, basePrice float64, cardID string, specialHour bool) *Student {
	return &Student{
		base:        base{number: number, screening: screening, seat: seat, basePrice: basePrice},
		cardID:      cardID,
		specialHour: specialHour,
	}
}

func (t *Student) FinalPrice() float64 {
	if !t.specialHour {
		return t.basePrice
	}
	return t.basePrice * (1 - studentDiscount)
}

func (t *Student) Eligible() bool { return t.cardID != "" }

func (t *Student) Receipt() string { return t.receipt(t.FinalPrice()) }

// ComboPromo wraps another ticket and bundles snacks and a drink. The
// price is the wrapped ticket's final price plus the combo's own base
// price, with 15% off the subtotal.
type ComboPromo struct {
	base
	inner    Ticket
	drink    string
	discount float64
}

func NewComboPromo(number int, screening, seat string, basePrice float64, inner Ticket, snacks []string, drink string) *ComboPromo {
	return &ComboPromo{
		base:     base{number: number, screening: screening, seat: seat, basePrice: basePrice, snacks: snacks},
		inner:    inner,
		drink:    drink,
		discount: comboDiscount,
	}
}

func (t *ComboPromo) FinalPrice() float64 {
	subtotal := t.inner.FinalPrice() + t.basePrice
	return subtotal * (1 - t.discount)
}

// Eligible keeps the base default and does not consult the wrapped
// ticket. Combos are sellable regardless of the inner variant's rules.
func (t *ComboPromo) Eligible() bool { return t.base.Eligible() }

func (t *ComboPromo) Inner() Ticket { return t.inner }
func (t *ComboPromo) Drink() string { return t.drink }

func (t *ComboPromo) Receipt() string { return t.receipt(t.FinalPrice()) }
