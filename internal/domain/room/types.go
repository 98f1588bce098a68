package room

// Status is a room's availability as shown to users.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
	StatusComingSoon  Status = "coming_soon"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusUnavailable, StatusComingSoon:
		return true
	default:
		return false
	}
}

// RecordState is the administrative lifecycle of the room row itself. Rooms
// are soft-deleted: a deleted room keeps its historical reservations but is
// invisible to listings and rejects new bookings.
type RecordState string

const (
	RecordActive  RecordState = "active"
	RecordBlocked RecordState = "blocked"
	RecordDeleted RecordState = "deleted"
)

func (s RecordState) String() string {
	return string(s)
}

func (s RecordState) IsValid() bool {
	switch s {
	case RecordActive, RecordBlocked, RecordDeleted:
		return true
	default:
		return false
	}
}
