package shared

import (
	"context"
	"time"

	"room-reserve/internal/domain/booking"
	"room-reserve/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: validation reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, res *booking.Reservation) (uuid.UUID, error)
	UpdateSlot(ctx context.Context, dbtx db.DBTX, id uuid.UUID, slot booking.TimeSlot) error
	Delete(ctx context.Context, dbtx db.DBTX, id, userID uuid.UUID) error
	// FindOverlapping backs booking.OverlapStore inside a transaction.
	FindOverlapping(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]*booking.Reservation, error)
	// AcquireRoomLock takes the per-room advisory lock that keeps the
	// conflict check and the subsequent write atomic across requests. The
	// lock is released at transaction end.
	AcquireRoomLock(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID) error
}
