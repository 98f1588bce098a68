//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"room-reserve/internal/infra"
	"room-reserve/internal/pkg/errs"
	"room-reserve/internal/usecase/queries"
	"room-reserve/tests/common/builder"
	queriesmock "room-reserve/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	mockRepo *queriesmock.MockReservationViewRepo
	queries  queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = queriesmock.NewMockReservationViewRepo(s.mockCtrl)
	s.queries = queries.NewReservationQueries(s.mockRepo)
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func notFound() error {
	return infra.WrapRepoErr("reservation not found", errors.New("no rows in result set"), infra.KindNotFound)
}

func (s *ReservationQueriesTestSuite) TestGetByID() {
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success: owner sees their reservation", func() {
		s.mockRepo.EXPECT().FindViewByID(s.ctx, view.ID).Return(view, nil).Times(1)

		got, err := s.queries.GetByID(s.ctx, view.UserID, view.ID)

		s.Require().NoError(err)
		s.Empty(cmp.Diff(view, got))
	})

	s.Run("error: another user's reservation looks missing", func() {
		s.mockRepo.EXPECT().FindViewByID(s.ctx, view.ID).Return(view, nil).Times(1)

		got, err := s.queries.GetByID(s.ctx, uuid.New(), view.ID)

		s.Nil(got)
		s.ErrorIs(err, errs.ErrReservationNotFound)
	})

	s.Run("error: repo not-found maps to the sentinel", func() {
		s.mockRepo.EXPECT().FindViewByID(s.ctx, view.ID).Return(nil, notFound()).Times(1)

		_, err := s.queries.GetByID(s.ctx, view.UserID, view.ID)
		s.ErrorIs(err, errs.ErrReservationNotFound)
	})

	s.Run("error: other repo failures pass through", func() {
		repoErr := infra.WrapRepoErr("query failed", errors.New("connection refused"))
		s.mockRepo.EXPECT().FindViewByID(s.ctx, view.ID).Return(nil, repoErr).Times(1)

		_, err := s.queries.GetByID(s.ctx, view.UserID, view.ID)
		s.Error(err)
		s.NotErrorIs(err, errs.ErrReservationNotFound)
	})
}

func (s *ReservationQueriesTestSuite) TestGetByIDSystem() {
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success: skips the owner check", func() {
		s.mockRepo.EXPECT().FindViewByID(s.ctx, view.ID).Return(view, nil).Times(1)

		got, err := s.queries.GetByIDSystem(s.ctx, view.ID)

		s.Require().NoError(err)
		s.Equal(view.UserID, got.UserID)
	})
}

func (s *ReservationQueriesTestSuite) TestGetByShareToken() {
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success", func() {
		s.mockRepo.EXPECT().FindViewByShareToken(s.ctx, view.ShareToken).Return(view, nil).Times(1)

		got, err := s.queries.GetByShareToken(s.ctx, view.ShareToken)

		s.Require().NoError(err)
		s.Empty(cmp.Diff(view, got))
	})

	s.Run("error: unknown token", func() {
		s.mockRepo.EXPECT().FindViewByShareToken(s.ctx, view.ShareToken).Return(nil, notFound()).Times(1)

		_, err := s.queries.GetByShareToken(s.ctx, view.ShareToken)
		s.ErrorIs(err, errs.ErrReservationNotFound)
	})
}

func (s *ReservationQueriesTestSuite) TestListByUser() {
	userID := uuid.New()

	s.Run("success: normalizes paging before hitting the repo", func() {
		items := []*queries.ReservationListItem{builder.NewReservationBuilder().BuildListItem()}

		s.mockRepo.EXPECT().CountByUser(s.ctx, userID, "sala").Return(int64(12), nil).Times(1)
		s.mockRepo.EXPECT().FindPageByUser(s.ctx, userID, "sala", int32(5), int32(5)).Return(items, nil).Times(1)

		got, err := s.queries.ListByUser(s.ctx, userID, queries.PageRequest{Page: 2, Search: "sala"})

		s.Require().NoError(err)
		want := &queries.ReservationPage{Items: items, Total: 12, Page: 2, PerPage: 5}
		s.Empty(cmp.Diff(want, got))
	})

	s.Run("success: zero page falls back to the first", func() {
		s.mockRepo.EXPECT().CountByUser(s.ctx, userID, "").Return(int64(0), nil).Times(1)
		s.mockRepo.EXPECT().FindPageByUser(s.ctx, userID, "", int32(5), int32(0)).
			Return([]*queries.ReservationListItem{}, nil).Times(1)

		got, err := s.queries.ListByUser(s.ctx, userID, queries.PageRequest{})

		s.Require().NoError(err)
		s.Equal(1, got.Page)
		s.Empty(got.Items)
	})

	s.Run("error: count failure stops the page query", func() {
		s.mockRepo.EXPECT().CountByUser(s.ctx, userID, "").
			Return(int64(0), infra.WrapRepoErr("count failed", errors.New("timeout"))).Times(1)

		_, err := s.queries.ListByUser(s.ctx, userID, queries.PageRequest{})
		s.Error(err)
	})
}
