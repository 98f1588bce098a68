package booking

import "github.com/google/uuid"

// Reason is a stable, machine-readable rejection code. Callers map these to
// localized user-facing messages; the codes themselves never change.
type Reason string

const (
	// Date or time string has the wrong shape, or does not name a real
	// calendar instant.
	ReasonInvalidFormat Reason = "INVALID_FORMAT"
	// Duration is non-positive or not a multiple of 30 minutes.
	ReasonInvalidDuration Reason = "INVALID_DURATION"
	// Start minute is not on a 00/30 boundary.
	ReasonUnalignedStart Reason = "UNALIGNED_START"
	// Start instant is strictly before the injected clock's now.
	ReasonPastStart Reason = "PAST_START"
	// Interval overlaps an existing reservation for the same room.
	ReasonConflict Reason = "CONFLICT"
)

func (r Reason) String() string {
	return string(r)
}

func (r Reason) IsValid() bool {
	switch r {
	case ReasonInvalidFormat, ReasonInvalidDuration, ReasonUnalignedStart, ReasonPastStart, ReasonConflict:
		return true
	default:
		return false
	}
}

// IntervalRequest is the raw, untrusted input to validation: calendar date,
// clock time and duration exactly as submitted. ExcludeID names a reservation
// omitted from conflict detection, used when revalidating an edit to the
// reservation's own time.
type IntervalRequest struct {
	Date            string
	Time            string
	DurationMinutes int
	RoomID          uuid.UUID
	ExcludeID       *uuid.UUID
}
