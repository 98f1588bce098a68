package queries

import (
	"context"

	"room-reserve/internal/infra"
	"room-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultReservationsPerPage = 5
	MaxPerPage                 = 100
)

type ReservationQueries interface {
	// GetByID is owner-scoped: a reservation belonging to someone else is
	// reported as not found rather than forbidden.
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem bypasses the owner check, for read-after-write inside
	// the command flows.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	GetByShareToken(ctx context.Context, token string) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page PageRequest) (*ReservationPage, error)
}

type ReservationViewRepo interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindViewByShareToken(ctx context.Context, token string) (*ReservationView, error)
	FindPageByUser(ctx context.Context, userID uuid.UUID, search string, limit, offset int32) ([]*ReservationListItem, error)
	CountByUser(ctx context.Context, userID uuid.UUID, search string) (int64, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, err
	}
	if view.UserID != actor {
		return nil, errs.ErrReservationNotFound
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByShareToken(ctx context.Context, token string) (*ReservationView, error) {
	view, err := q.repo.FindViewByShareToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, page PageRequest) (*ReservationPage, error) {
	page = page.Normalize(DefaultReservationsPerPage, MaxPerPage)

	total, err := q.repo.CountByUser(ctx, userID, page.Search)
	if err != nil {
		return nil, err
	}

	items, err := q.repo.FindPageByUser(ctx, userID, page.Search, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	return &ReservationPage{
		Items:   items,
		Total:   total,
		Page:    page.Page,
		PerPage: page.PerPage,
	}, nil
}
