package readstore

import (
	"context"

	"room-reserve/internal/infra"
	"room-reserve/internal/infra/db"
	"room-reserve/internal/pkg/pgconv"
	"room-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewColumns = `
	r.id, r.room_id, s.name AS room_name, r.user_id,
	r.start_at, r.end_at, r.share_token, r.created_at, r.updated_at`

func (r *ReservationReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := `
		SELECT` + reservationViewColumns + `
		  FROM reservations r
		  JOIN rooms s ON s.id = r.room_id
		 WHERE r.id = $1`

	return r.scanView(ctx, query, id)
}

func (r *ReservationReadStore) FindViewByShareToken(ctx context.Context, token string) (*queries.ReservationView, error) {
	query := `
		SELECT` + reservationViewColumns + `
		  FROM reservations r
		  JOIN rooms s ON s.id = r.room_id
		 WHERE r.share_token = $1`

	return r.scanView(ctx, query, token)
}

func (r *ReservationReadStore) scanView(ctx context.Context, query string, arg any) (*queries.ReservationView, error) {
	var view queries.ReservationView
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&view.ID,
		&view.RoomID,
		&view.RoomName,
		&view.UserID,
		&view.StartAt,
		&view.EndAt,
		&view.ShareToken,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation view", err)
	}
	return &view, nil
}

func (r *ReservationReadStore) FindPageByUser(ctx context.Context, userID uuid.UUID, search string, limit, offset int32) ([]*queries.ReservationListItem, error) {
	const query = `
		SELECT r.id, r.room_id, s.name AS room_name,
		       r.start_at, r.end_at, r.share_token, r.created_at
		  FROM reservations r
		  JOIN rooms s ON s.id = r.room_id
		 WHERE r.user_id = $1
		   AND ($2 = '' OR s.name ILIKE '%' || $2 || '%')
		 ORDER BY r.start_at DESC, r.id
		 LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, userID, search, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations page", err)
	}
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		if scanErr := rows.Scan(
			&item.ID,
			&item.RoomID,
			&item.RoomName,
			&item.StartAt,
			&item.EndAt,
			&item.ShareToken,
			&item.CreatedAt,
		); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation list row", scanErr)
		}
		items = append(items, &item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation list rows", rowsErr)
	}

	return items, nil
}

func (r *ReservationReadStore) CountByUser(ctx context.Context, userID uuid.UUID, search string) (int64, error) {
	const query = `
		SELECT COUNT(*)
		  FROM reservations r
		  JOIN rooms s ON s.id = r.room_id
		 WHERE r.user_id = $1
		   AND ($2 = '' OR s.name ILIKE '%' || $2 || '%')`

	var total int64
	if err := r.db.QueryRow(ctx, query, userID, search).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return total, nil
}
