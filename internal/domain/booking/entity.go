package booking

import (
	"errors"
	"time"

	"room-reserve/internal/pkg/sharetoken"

	"github.com/google/uuid"
)

var (
	ErrInvalidShareToken = errors.New("invalid share token")
	ErrMissingRoom       = errors.New("reservation requires a room")
	ErrMissingUser       = errors.New("reservation requires a user")
)

// Reservation is one booked interval of one room by one user. Reservations
// are hard-deleted on cancellation; only the time slot is mutable, and only
// through Reschedule.
type Reservation struct {
	id         uuid.UUID
	roomID     uuid.UUID
	userID     uuid.UUID
	slot       TimeSlot
	shareToken string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(roomID, userID uuid.UUID, slot TimeSlot, shareToken string) (*Reservation, error) {
	if roomID == uuid.Nil {
		return nil, ErrMissingRoom
	}
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if !sharetoken.IsValid(shareToken) {
		return nil, ErrInvalidShareToken
	}

	return &Reservation{
		id:         uuid.New(),
		roomID:     roomID,
		userID:     userID,
		slot:       slot,
		shareToken: shareToken,
	}, nil
}

func ReconstructReservation(
	id, roomID, userID uuid.UUID,
	slot TimeSlot,
	shareToken string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		roomID:     roomID,
		userID:     userID,
		slot:       slot,
		shareToken: shareToken,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Reschedule replaces the time slot. The caller is responsible for having
// re-validated the new slot (including conflict checking with this
// reservation excluded) before calling.
func (r *Reservation) Reschedule(slot TimeSlot) {
	r.slot = slot
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) HasStarted(now time.Time) bool {
	return r.slot.HasStarted(now)
}

// HasEnded reports whether the slot is over. The end instant is exclusive,
// so a reservation has ended the moment now reaches it.
func (r *Reservation) HasEnded(now time.Time) bool {
	return !now.Before(r.slot.End())
}

func (r *Reservation) ID() uuid.UUID      { return r.id }
func (r *Reservation) RoomID() uuid.UUID  { return r.roomID }
func (r *Reservation) UserID() uuid.UUID  { return r.userID }
func (r *Reservation) Slot() TimeSlot     { return r.slot }
func (r *Reservation) ShareToken() string { return r.shareToken }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
