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

type RoomQueriesTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	mockRepo *queriesmock.MockRoomViewRepo
	queries  queries.RoomQueries
}

func (s *RoomQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = queriesmock.NewMockRoomViewRepo(s.mockCtrl)
	s.queries = queries.NewRoomQueries(s.mockRepo)
}

func (s *RoomQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomQueriesSuite(t *testing.T) {
	suite.Run(t, new(RoomQueriesTestSuite))
}

func (s *RoomQueriesTestSuite) TestList() {
	s.Run("success: six rooms per page by default", func() {
		items := []*queries.RoomView{builder.NewRoomBuilder().BuildView()}

		s.mockRepo.EXPECT().CountPublic(s.ctx, "").Return(int64(7), nil).Times(1)
		s.mockRepo.EXPECT().FindPublicPage(s.ctx, "", int32(6), int32(6)).Return(items, nil).Times(1)

		got, err := s.queries.List(s.ctx, queries.PageRequest{Page: 2})

		s.Require().NoError(err)
		want := &queries.RoomPage{Items: items, Total: 7, Page: 2, PerPage: 6}
		s.Empty(cmp.Diff(want, got))
	})

	s.Run("success: search filter reaches both queries", func() {
		s.mockRepo.EXPECT().CountPublic(s.ctx, "grande").Return(int64(0), nil).Times(1)
		s.mockRepo.EXPECT().FindPublicPage(s.ctx, "grande", int32(6), int32(0)).
			Return([]*queries.RoomView{}, nil).Times(1)

		got, err := s.queries.List(s.ctx, queries.PageRequest{Search: "grande"})

		s.Require().NoError(err)
		s.Empty(got.Items)
		s.Equal(int64(0), got.Total)
	})

	s.Run("error: repo failure passes through", func() {
		s.mockRepo.EXPECT().CountPublic(s.ctx, "").
			Return(int64(0), infra.WrapRepoErr("count failed", errors.New("timeout"))).Times(1)

		_, err := s.queries.List(s.ctx, queries.PageRequest{})
		s.Error(err)
	})
}

func (s *RoomQueriesTestSuite) TestGetByID() {
	roomID := uuid.New()

	s.Run("success", func() {
		view := builder.NewRoomBuilder().BuildView()
		view.ID = roomID

		s.mockRepo.EXPECT().FindViewByID(s.ctx, roomID).Return(view, nil).Times(1)

		got, err := s.queries.GetByID(s.ctx, roomID)

		s.Require().NoError(err)
		s.Empty(cmp.Diff(view, got))
	})

	s.Run("error: repo not-found maps to the sentinel", func() {
		s.mockRepo.EXPECT().FindViewByID(s.ctx, roomID).Return(nil, notFound()).Times(1)

		_, err := s.queries.GetByID(s.ctx, roomID)
		s.ErrorIs(err, errs.ErrRoomNotFound)
	})
}
