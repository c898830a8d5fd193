package screening

import "errors"

// ErrCapacityExceeded is returned by Sell when the requested quantity
// does not fit into the remaining seats.
var ErrCapacityExceeded = errors.New("not enough seats available")
