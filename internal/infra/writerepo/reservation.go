package writerepo

import (
	"context"
	"errors"
	"time"

	"room-reserve/internal/domain/booking"
	"room-reserve/internal/infra"
	"room-reserve/internal/infra/db"
	"room-reserve/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeForeignKeyViolated = "23503"
	pgErrCodeExclusionViolation = "23P01"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *booking.Reservation) (uuid.UUID, error) {
	const query = `
		INSERT INTO reservations (id, room_id, user_id, start_at, end_at, share_token)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		res.ID(),
		res.RoomID(),
		res.UserID(),
		res.Slot().Start(),
		res.Slot().End(),
		res.ShareToken(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) UpdateSlot(ctx context.Context, dbtx db.DBTX, id uuid.UUID, slot booking.TimeSlot) error {
	const query = `
		UPDATE reservations
		   SET start_at = $2, end_at = $3, updated_at = now()
		 WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, slot.Start(), slot.End())
	if err != nil {
		return wrapWriteErr("failed to update reservation slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, dbtx db.DBTX, id, userID uuid.UUID) error {
	const query = `DELETE FROM reservations WHERE id = $1 AND user_id = $2`

	tag, err := dbtx.Exec(ctx, query, id, userID)
	if err != nil {
		return wrapWriteErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// Half-open overlap predicate: [a1,a2) and [b1,b2) intersect iff a1 < b2 AND
// a2 > b1. Touching endpoints never conflict.
func (r *ReservationRepository) FindOverlapping(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]*booking.Reservation, error) {
	const query = `
		SELECT id, room_id, user_id, start_at, end_at, share_token, created_at, updated_at
		  FROM reservations
		 WHERE room_id = $1
		   AND start_at < $3
		   AND end_at > $2
		   AND ($4::uuid IS NULL OR id <> $4)`

	rows, err := dbtx.Query(ctx, query, roomID, start, end, pgconv.UUIDPtrToPgtype(excludeID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query overlapping reservations", err)
	}
	defer rows.Close()

	var result []*booking.Reservation
	for rows.Next() {
		var (
			id, rmID, userID     uuid.UUID
			startAt, endAt       time.Time
			shareToken           string
			createdAt, updatedAt time.Time
		)
		if scanErr := rows.Scan(&id, &rmID, &userID, &startAt, &endAt, &shareToken, &createdAt, &updatedAt); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", scanErr)
		}

		slot, slotErr := booking.NewTimeSlot(startAt, endAt)
		if slotErr != nil {
			return nil, infra.WrapRepoErr("stored reservation has invalid interval", slotErr)
		}
		result = append(result, booking.ReconstructReservation(id, rmID, userID, slot, shareToken, createdAt, updatedAt))
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", rowsErr)
	}

	return result, nil
}

func (r *ReservationRepository) AcquireRoomLock(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID) error {
	// Transaction-scoped advisory lock keyed by room; serializes the
	// conflict check and write of concurrent bookings for the same room.
	const query = `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`

	if _, err := dbtx.Exec(ctx, query, roomID.String()); err != nil {
		return infra.WrapRepoErr("failed to acquire room lock", err)
	}
	return nil
}

func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolated:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
