package readstore

import (
	"context"

	"room-reserve/internal/infra"
	"room-reserve/internal/infra/db"
	"room-reserve/internal/pkg/pgconv"
	"room-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

// FindPublicPage lists rooms the way the public listing shows them: active
// records, currently available, ordered by name.
func (r *RoomReadStore) FindPublicPage(ctx context.Context, search string, limit, offset int32) ([]*queries.RoomView, error) {
	const query = `
		SELECT id, name, capacity, photo, status, created_at
		  FROM rooms
		 WHERE record_state = 'active'
		   AND status = 'available'
		   AND ($1 = '' OR name ILIKE '%' || $1 || '%')
		 ORDER BY name
		 LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rooms page", err)
	}
	defer rows.Close()

	var items []*queries.RoomView
	for rows.Next() {
		var view queries.RoomView
		if scanErr := rows.Scan(&view.ID, &view.Name, &view.Capacity, &view.Photo, &view.Status, &view.CreatedAt); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", scanErr)
		}
		items = append(items, &view)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", rowsErr)
	}

	return items, nil
}

func (r *RoomReadStore) CountPublic(ctx context.Context, search string) (int64, error) {
	const query = `
		SELECT COUNT(*)
		  FROM rooms
		 WHERE record_state = 'active'
		   AND status = 'available'
		   AND ($1 = '' OR name ILIKE '%' || $1 || '%')`

	var total int64
	if err := r.db.QueryRow(ctx, query, search).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count rooms", err)
	}
	return total, nil
}

func (r *RoomReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	const query = `
		SELECT id, name, capacity, photo, status, created_at
		  FROM rooms
		 WHERE id = $1
		   AND record_state <> 'deleted'`

	var view queries.RoomView
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Name, &view.Capacity, &view.Photo, &view.Status, &view.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room view", err)
	}
	return &view, nil
}
