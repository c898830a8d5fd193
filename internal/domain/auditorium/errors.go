package auditorium

import "errors"

var (
	// ErrSeatOutOfRange is returned when reservation coordinates fall
	// outside the seat grid.
	ErrSeatOutOfRange = errors.New("seat out of range")
	// ErrSeatOccupied is returned when the target cell is already
	// reserved.
	ErrSeatOccupied = errors.New("seat already reserved")
)
