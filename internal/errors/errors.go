package errors

import "errors"

var ErrScreeningNotFound = errors.New("screening not found")
var ErrRoomNotFound = errors.New("room not found")
var ErrProductNotFound = errors.New("product not found")
var ErrIneligibleTicket = errors.New("ticket requirements not met")
