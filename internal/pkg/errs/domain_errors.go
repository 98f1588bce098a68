package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Room errors
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomNotBookable = errors.New("room is not bookable")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationStarted  = errors.New("reservation has already started")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
