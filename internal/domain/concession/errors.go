package concession

import "errors"

// ErrInsufficientStock is returned by DeductStock when fewer units
// remain than requested.
var ErrInsufficientStock = errors.New("insufficient stock")
