package commands

import (
	"context"
	"log/slog"
	"time"

	"room-reserve/internal/domain/booking"
	"room-reserve/internal/domain/room"
	"room-reserve/internal/infra"
	"room-reserve/internal/infra/db"
	"room-reserve/internal/pkg/clock"
	"room-reserve/internal/pkg/errs"
	"room-reserve/internal/pkg/sharetoken"
	"room-reserve/internal/usecase/queries"
	"room-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

// Rejection carries a booking validation reason across the usecase boundary.
// The validator itself reports rejections as plain results; commands convert
// them to this typed error so transaction rollback and transport mapping both
// work off the error path.
type Rejection struct {
	Reason booking.Reason
}

func (e *Rejection) Error() string {
	return "booking rejected: " + e.Reason.String()
}

type CreateReservationInput struct {
	RoomID          uuid.UUID
	Date            string
	Time            string
	DurationMinutes int
}

type RescheduleReservationInput struct {
	Date            string
	Time            string
	DurationMinutes int
}

type ReservationCommands interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateReservationInput) (*queries.ReservationView, error)
	Reschedule(ctx context.Context, userID, reservationID uuid.UUID, in RescheduleReservationInput) (*queries.ReservationView, error)
	Cancel(ctx context.Context, userID, reservationID uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
	loc                *time.Location
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	clk clock.Clock,
	loc *time.Location,
) ReservationCommands {
	if loc == nil {
		loc = time.Local
	}
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		clock:              clk,
		loc:                loc,
	}
}

// txOverlapStore binds the repository's overlap query to one open transaction
// so the validator sees the same snapshot the write will use.
type txOverlapStore struct {
	dbtx db.DBTX
	repo shared.ReservationRepository
}

func (s txOverlapStore) FindOverlapping(ctx context.Context, roomID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]*booking.Reservation, error) {
	return s.repo.FindOverlapping(ctx, s.dbtx, roomID, start, end, excludeID)
}

func (c *reservationCommandsImpl) Create(ctx context.Context, userID uuid.UUID, in CreateReservationInput) (*queries.ReservationView, error) {
	roomEntity, err := c.loadBookableRoom(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	var reservationID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Reservations()
		dbtx := tx.DB()

		// Serializes concurrent bookings of the same room; released on
		// commit or rollback.
		if lockErr := repo.AcquireRoomLock(ctx, dbtx, roomEntity.ID()); lockErr != nil {
			return errs.Mark(lockErr, errs.ErrDatabaseOperationFailed)
		}

		result, valErr := c.validate(ctx, dbtx, repo, booking.IntervalRequest{
			Date:            in.Date,
			Time:            in.Time,
			DurationMinutes: in.DurationMinutes,
			RoomID:          roomEntity.ID(),
		})
		if valErr != nil {
			return valErr
		}

		token, tokenErr := sharetoken.New()
		if tokenErr != nil {
			return tokenErr
		}

		entity, entityErr := booking.NewReservation(roomEntity.ID(), userID, result.Slot(), token)
		if entityErr != nil {
			return entityErr
		}

		id, createErr := repo.Create(ctx, dbtx, entity)
		if createErr != nil {
			// Exclusion constraint backstop: a conflicting insert that
			// slipped past the check is still a plain CONFLICT outcome.
			if infra.IsKind(createErr, infra.KindConflict) {
				return &Rejection{Reason: booking.ReasonConflict}
			}
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		reservationID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation created",
		"reservation_id", reservationID,
		"room_id", in.RoomID,
		"user_id", userID)

	return c.reservationQueries.GetByIDSystem(ctx, reservationID)
}

func (c *reservationCommandsImpl) Reschedule(ctx context.Context, userID, reservationID uuid.UUID, in RescheduleReservationInput) (*queries.ReservationView, error) {
	snap, err := c.loadOwnedReservation(ctx, userID, reservationID)
	if err != nil {
		return nil, err
	}

	// Only future reservations can be moved.
	if !snap.StartAt.After(c.clock.Now()) {
		return nil, errs.ErrReservationStarted
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Reservations()
		dbtx := tx.DB()

		if lockErr := repo.AcquireRoomLock(ctx, dbtx, snap.RoomID); lockErr != nil {
			return errs.Mark(lockErr, errs.ErrDatabaseOperationFailed)
		}

		excludeID := snap.ID
		result, valErr := c.validate(ctx, dbtx, repo, booking.IntervalRequest{
			Date:            in.Date,
			Time:            in.Time,
			DurationMinutes: in.DurationMinutes,
			RoomID:          snap.RoomID,
			ExcludeID:       &excludeID,
		})
		if valErr != nil {
			return valErr
		}

		if updErr := repo.UpdateSlot(ctx, dbtx, snap.ID, result.Slot()); updErr != nil {
			if infra.IsKind(updErr, infra.KindConflict) {
				return &Rejection{Reason: booking.ReasonConflict}
			}
			return errs.Mark(updErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation rescheduled",
		"reservation_id", reservationID,
		"room_id", snap.RoomID,
		"user_id", userID)

	return c.reservationQueries.GetByIDSystem(ctx, reservationID)
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, userID, reservationID uuid.UUID) error {
	snap, err := c.loadOwnedReservation(ctx, userID, reservationID)
	if err != nil {
		return err
	}

	if !snap.StartAt.After(c.clock.Now()) {
		return errs.ErrReservationStarted
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if delErr := tx.Reservations().Delete(ctx, tx.DB(), snap.ID, userID); delErr != nil {
			if infra.IsKind(delErr, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return errs.Mark(delErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("reservation canceled",
		"reservation_id", reservationID,
		"room_id", snap.RoomID,
		"user_id", userID)

	return nil
}

// validate runs the interval validator against the transaction's snapshot and
// converts a rejection into a typed error so the surrounding transaction
// rolls back.
func (c *reservationCommandsImpl) validate(ctx context.Context, dbtx db.DBTX, repo shared.ReservationRepository, req booking.IntervalRequest) (booking.Result, error) {
	validator := booking.NewValidator(c.clock, txOverlapStore{dbtx: dbtx, repo: repo}, c.loc)

	result, err := validator.Validate(ctx, req)
	if err != nil {
		return booking.Result{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !result.OK() {
		return booking.Result{}, &Rejection{Reason: result.Reason()}
	}
	return result, nil
}

func (c *reservationCommandsImpl) loadBookableRoom(ctx context.Context, roomID uuid.UUID) (*room.Room, error) {
	snap, err := c.uow.CommandReads().RoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	roomEntity, err := room.NewRoom(snap.ID, snap.Name, snap.Capacity, snap.Photo, room.Status(snap.Status), room.RecordState(snap.RecordState))
	if err != nil {
		return nil, err
	}
	if roomEntity.IsDeleted() {
		return nil, errs.ErrRoomNotFound
	}
	if !roomEntity.IsBookable() {
		return nil, errs.ErrRoomNotBookable
	}
	return roomEntity, nil
}

// loadOwnedReservation reports someone else's reservation as not found so the
// API does not leak existence.
func (c *reservationCommandsImpl) loadOwnedReservation(ctx context.Context, userID, reservationID uuid.UUID) (*shared.ReservationSnapshot, error) {
	snap, err := c.uow.CommandReads().ReservationByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if snap.UserID != userID {
		return nil, errs.ErrReservationNotFound
	}
	return snap, nil
}
