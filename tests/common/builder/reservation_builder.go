//go:build unit || e2e

package builder

import (
	"time"

	dombooking "room-reserve/internal/domain/booking"
	reqdto "room-reserve/internal/handler/dto/request"
	"room-reserve/internal/usecase/commands"
	"room-reserve/internal/usecase/queries"
	"room-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	RoomID     uuid.UUID
	RoomName   string
	UserID     uuid.UUID
	Date       string
	Time       string
	Duration   int
	ShareToken string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Defaults to a one-hour slot at 2025-06-15 10:00 UTC; pair with a clock set
// earlier that morning.
func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		RoomID:     uuid.New(),
		RoomName:   "Sala Grande",
		UserID:     uuid.New(),
		Date:       "2025-06-15",
		Time:       "10:00",
		Duration:   60,
		ShareToken: "a1b2c3d4e5f60718",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) slot() dombooking.TimeSlot {
	start, err := time.ParseInLocation(dombooking.SQLTimeLayout, b.Date+" "+b.Time+":00", time.UTC)
	if err != nil {
		panic("builder: invalid date/time: " + err.Error())
	}
	end := start.Add(time.Duration(b.Duration) * time.Minute)
	slot, err := dombooking.NewTimeSlot(start, end)
	if err != nil {
		panic("builder: invalid slot: " + err.Error())
	}
	return slot
}

func (b *ReservationBuilder) BuildDomain() (*dombooking.Reservation, error) {
	return dombooking.NewReservation(b.RoomID, b.UserID, b.slot(), b.ShareToken)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:          b.RoomID,
		Date:            b.Date,
		Time:            b.Time,
		DurationMinutes: &b.Duration,
	}
}

func (b *ReservationBuilder) BuildRescheduleRequestDTO() reqdto.RescheduleReservationRequest {
	return reqdto.RescheduleReservationRequest{
		Date:            b.Date,
		Time:            b.Time,
		DurationMinutes: &b.Duration,
	}
}

func (b *ReservationBuilder) BuildCreateInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		RoomID:          b.RoomID,
		Date:            b.Date,
		Time:            b.Time,
		DurationMinutes: b.Duration,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	slot := b.slot()
	return &queries.ReservationView{
		ID:         uuid.New(),
		RoomID:     b.RoomID,
		RoomName:   b.RoomName,
		UserID:     b.UserID,
		StartAt:    slot.Start(),
		EndAt:      slot.End(),
		ShareToken: b.ShareToken,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	slot := b.slot()
	return &queries.ReservationListItem{
		ID:         uuid.New(),
		RoomID:     b.RoomID,
		RoomName:   b.RoomName,
		StartAt:    slot.Start(),
		EndAt:      slot.End(),
		ShareToken: b.ShareToken,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	slot := b.slot()
	return &shared.ReservationSnapshot{
		ID:         uuid.New(),
		RoomID:     b.RoomID,
		UserID:     b.UserID,
		StartAt:    slot.Start(),
		EndAt:      slot.End(),
		ShareToken: b.ShareToken,
	}
}
