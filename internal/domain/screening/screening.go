package screening

// Capacity is fixed for every screening regardless of the room's real
// seat count. The two numbers are deliberately not reconciled.
const Capacity = 100

// Screening is a bookable show on the billboard. The set of
// implementations is closed: Premiere, Classic, Documentary and
// SpecialEvent.
type Screening interface {
	Code() string
	Title() string
	DurationMin() int
	Showtime() string
	Room() int

	// TicketPrice is the flat per-seat price of the variant,
	// independent of day or time.
	TicketPrice() float64
	// AgeRestriction returns the human-readable restriction label.
	AgeRestriction() string

	Sell(quantity int) error
	SeatsSold() int
	Revenue() float64
	Occupancy() float64
}

type base struct {
	code        string
	title       string
	durationMin int
	showtime    string
	room        int
	seatsSold   int
	revenue     float64

	// price is set by each variant constructor so Sell accumulates
	// revenue with the variant's TicketPrice.
	price func() float64
}

func (b *base) Code() string     { return b.code }
func (b *base) Title() string    { return b.title }
func (b *base) DurationMin() int { return b.durationMin }
func (b *base) Showtime() string { return b.showtime }
func (b *base) Room() int        { return b.room }
func (b *base) SeatsSold() int   { return b.seatsSold }
func (b *base) Revenue() float64 { return b.revenue }

// Occupancy returns the sold share of capacity in percent.
func (b *base) Occupancy() float64 {
	return float64(b.seatsSold) / float64(Capacity) * 100
}

// Sell registers quantity sold seats. It fails without mutation when
// the request exceeds the remaining capacity.
func (b *base) Sell(quantity int) error {
	if quantity > Capacity-b.seatsSold {
		return ErrCapacityExceeded
	}
	b.seatsSold += quantity
	b.revenue += float64(quantity) * b.price()
	return nil
}

// Premiere is a first-week showing.
type Premiere struct {
	base
	PremiereWeek int
	Language     string
	Format       string
}

func NewPremiere(code, title string, durationMin int, showtime string, room, premiereWeek int, language, format string) *Premiere {
	s := &Premiere{
		base:         base{code: code, title: title, durationMin: durationMin, showtime: showtime, room: room},
		PremiereWeek: premiereWeek,
		Language:     language,
		Format:       format,
	}
	s.price = s.TicketPrice
	return s
}

func (s *Premiere) TicketPrice() float64   { return 10 }
func (s *Premiere) AgeRestriction() string { return "15+" }

// Classic is a re-run of an older film. A configured special price
// overrides the default of 5.
type Classic struct {
	base
	Year         int
	Restored     bool
	specialPrice float64
}

func NewClassic(code, title string, durationMin int, showtime string, room, year int, restored bool, specialPrice float64) *Classic {
	s := &Classic{
		base:         base{code: code, title: title, durationMin: durationMin, showtime: showtime, room: room},
		Year:         year,
		Restored:     restored,
		specialPrice: specialPrice,
	}
	s.price = s.TicketPrice
	return s
}

func (s *Classic) TicketPrice() float64 {
	if s.specialPrice != 0 {
		return s.specialPrice
	}
	return 5
}

func (s *Classic) AgeRestriction() string { return "All ages" }

// Documentary showing.
type Documentary struct {
	base
	Topic       string
	Extended    bool
	Educational bool
}

func NewDocumentary(code, title string, durationMin int, showtime string, room int, topic string, extended, educational bool) *Documentary {
	s := &Documentary{
		base:        base{code: code, title: title, durationMin: durationMin, showtime: showtime, room: room},
		Topic:       topic,
		Extended:    extended,
		Educational: educational,
	}
	s.price = s.TicketPrice
	return s
}

func (s *Documentary) TicketPrice() float64   { return 7 }
func (s *Documentary) AgeRestriction() string { return "8+" }

// SpecialEvent is a non-film show (concerts, award broadcasts).
type SpecialEvent struct {
	base
	EventType     string
	LiveBroadcast bool
	PremiumPrice  float64
}

func NewSpecialEvent(code, title string, durationMin int, showtime string, room int, eventType string, liveBroadcast bool, premiumPrice float64) *SpecialEvent {
	s := &SpecialEvent{
		base:          base{code: code, title: title, durationMin: durationMin, showtime: showtime, room: room},
		EventType:     eventType,
		LiveBroadcast: liveBroadcast,
		PremiumPrice:  premiumPrice,
	}
	s.price = s.TicketPrice
	return s
}

func (s *SpecialEvent) TicketPrice() float64   { return 15 }
func (s *SpecialEvent) AgeRestriction() string { return "18+" }
