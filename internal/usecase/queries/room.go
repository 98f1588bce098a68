package queries

import (
	"context"

	"room-reserve/internal/infra"
	"room-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

const DefaultRoomsPerPage = 6

type RoomQueries interface {
	// List returns the public listing: active, available rooms only.
	List(ctx context.Context, page PageRequest) (*RoomPage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type RoomViewRepo interface {
	FindPublicPage(ctx context.Context, search string, limit, offset int32) ([]*RoomView, error)
	CountPublic(ctx context.Context, search string) (int64, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type roomQueriesImpl struct {
	repo RoomViewRepo
}

func NewRoomQueries(repo RoomViewRepo) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) List(ctx context.Context, page PageRequest) (*RoomPage, error) {
	page = page.Normalize(DefaultRoomsPerPage, MaxPerPage)

	total, err := q.repo.CountPublic(ctx, page.Search)
	if err != nil {
		return nil, err
	}

	items, err := q.repo.FindPublicPage(ctx, page.Search, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	return &RoomPage{
		Items:   items,
		Total:   total,
		Page:    page.Page,
		PerPage: page.PerPage,
	}, nil
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.repo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, err
	}
	return view, nil
}
