package concession

import (
	"fmt"
	"math"
)

// Item is a stocked sellable concession good.
type Item interface {
	Code() string
	Name() string
	Stock() int

	// UnitPrice is the sale price of one unit.
	UnitPrice() float64
	// DeductStock removes quantity units, failing without mutation
	// when there is not enough stock.
	DeductStock(quantity int) error
	// Describe renders the menu listing line.
	Describe() string
}

type base struct {
	code  string
	name  string
	price float64
	stock int
}

func (b *base) Code() string       { return b.code }
func (b *base) Name() string       { return b.name }
func (b *base) Stock() int         { return b.stock }
func (b *base) UnitPrice() float64 { return b.price }

func (b *base) DeductStock(quantity int) error {
	if quantity > b.stock {
		return ErrInsufficientStock
	}
	b.stock -= quantity
	return nil
}

func (b *base) Describe() string {
	return fmt.Sprintf("[%s] %s - $%.2f (stock: %d)", b.code, b.name, b.UnitPrice(), b.stock)
}

// Popcorn in S/M/L sizes.
type Popcorn struct {
	base
	Size     string
	Buttered bool
	Salted   bool
}

func NewPopcorn(code, name string, price float64, stock int, size string, buttered, salted bool) *Popcorn {
	return &Popcorn{
		base:     base{code: code, name: name, price: price, stock: stock},
		Size:     size,
		Buttered: buttered,
		Salted:   salted,
	}
}

// Drink covers sodas and water.
type Drink struct {
	base
	Brand string
	Cold  bool
	Fizzy bool
}

func NewDrink(code, name string, price float64, stock int, brand string, cold, fizzy bool) *Drink {
	return &Drink{
		base:  base{code: code, name: name, price: price, stock: stock},
		Brand: brand,
		Cold:  cold,
		Fizzy: fizzy,
	}
}

// Candy is a packaged sweet.
type Candy struct {
	base
	Kind     string
	Grams    int
	Imported bool
}

func NewCandy(code, name string, price float64, stock int, kind string, grams int, imported bool) *Candy {
	return &Candy{
		base:     base{code: code, name: name, price: price, stock: stock},
		Kind:     kind,
		Grams:    grams,
		Imported: imported,
	}
}

// Combo bundles component items and sells them at a discounted sum of
// their prices. Its stock counter tracks bundle availability and is
// independent of the components' own stock.
type Combo struct {
	base
	items    []Item
	discount float64
}

func NewCombo(code, name string, stock int, items []Item, discount float64) *Combo {
	return &Combo{
		base:     base{code: code, name: name, stock: stock},
		items:    items,
		discount: discount,
	}
}

func (c *Combo) Items() []Item { return c.items }

// UnitPrice is the discounted sum of the component prices, rounded to
// cents.
func (c *Combo) UnitPrice() float64 {
	sum := 0.0
	for _, it := range c.items {
		sum += it.UnitPrice()
	}
	return math.Round(sum*(1-c.discount)*100) / 100
}

func (c *Combo) Describe() string {
	return fmt.Sprintf("[%s] %s - $%.2f (stock: %d, %d items, %.0f%% off)",
		c.code, c.name, c.UnitPrice(), c.stock, len(c.items), c.discount*100)
}
