package auditorium

import "math"

const (
	StatusAvailable = "Available"
	StatusOccupied  = "Occupied"
)

// Auditorium is a physical room with a seat grid and a room-type
// surcharge. The set of implementations is closed: Standard2D, ThreeD,
// IMAX and VIP.
type Auditorium interface {
	Number() int
	Capacity() int
	ScreenType() string
	// GridSize is the side of the square seat grid,
	// floor(sqrt(capacity)). Addressable seats (GridSize²) can be
	// fewer than Capacity when the capacity is not a perfect square.
	GridSize() int
	Status() string

	ReserveSeat(row, col int) error

	// Surcharge is the room-type premium added to a seat.
	Surcharge() float64
	// Equipment lists the room's installed equipment.
	Equipment() []string
}

type base struct {
	number     int
	capacity   int
	screenType string
	seats      [][]bool
	status     string
}

func newBase(number, capacity int, screenType string) base {
	size := int(math.Sqrt(float64(capacity)))
	seats := make([][]bool, size)
	for i := range seats {
		seats[i] = make([]bool, size)
	}
	return base{
		number:     number,
		capacity:   capacity,
		screenType: screenType,
		seats:      seats,
		status:     StatusAvailable,
	}
}

func (b *base) Number() int        { return b.number }
func (b *base) Capacity() int      { return b.capacity }
func (b *base) ScreenType() string { return b.screenType }
func (b *base) GridSize() int      { return len(b.seats) }
func (b *base) Status() string     { return b.status }

// ReserveSeat marks the cell occupied. An occupied cell never reverts
// to free; there is no cancellation.
func (b *base) ReserveSeat(row, col int) error {
	if row < 0 || row >= len(b.seats) || col < 0 || col >= len(b.seats) {
		return ErrSeatOutOfRange
	}
	if b.seats[row][col] {
		return ErrSeatOccupied
	}
	b.seats[row][col] = true
	b.status = StatusOccupied
	return nil
}

// Standard2D has no surcharge.
type Standard2D struct {
	base
}

func NewStandard2D(number, capacity int) *Standard2D {
	return &Standard2D{base: newBase(number, capacity, "2D")}
}

func (a *Standard2D) Surcharge() float64 { return 0 }

func (a *Standard2D) Equipment() []string {
	return []string{"Standard screen", "Dolby sound"}
}

// ThreeD carries a configurable surcharge; zero selects the default
// of 3.
type ThreeD struct {
	base
	surcharge float64
}

func NewThreeD(number, capacity int, surcharge float64) *ThreeD {
	if surcharge == 0 {
		surcharge = 3
	}
	return &ThreeD{base: newBase(number, capacity, "3D"), surcharge: surcharge}
}

func (a *ThreeD) Surcharge() float64 { return a.surcharge }

func (a *ThreeD) Equipment() []string {
	return []string{"3D projector", "3D glasses included", "Enhanced sound"}
}

// IMAX carries a configurable surcharge; zero selects the default
// of 5.
type IMAX struct {
	base
	surcharge float64
}

func NewIMAX(number, capacity int, surcharge float64) *IMAX {
	if surcharge == 0 {
		surcharge = 5
	}
	return &IMAX{base: newBase(number, capacity, "IMAX"), surcharge: surcharge}
}

func (a *IMAX) Surcharge() float64 { return a.surcharge }

func (a *IMAX) Equipment() []string {
	return []string{"Giant screen", "Immersive sound", "Laser projection"}
}

// VIP has a fixed surcharge of 8.
type VIP struct {
	base
}

func NewVIP(number, capacity int) *VIP {
	return &VIP{base: newBase(number, capacity, "VIP")}
}

func (a *VIP) Surcharge() float64 { return 8 }

func (a *VIP) Equipment() []string {
	return []string{"Reclining seats", "Table service", "Exclusive lounge"}
}
