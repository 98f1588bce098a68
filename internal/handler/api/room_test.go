//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"room-reserve/internal/handler/api"
	resdto "room-reserve/internal/handler/dto/response"
	"room-reserve/internal/pkg/errs"
	"room-reserve/internal/usecase/queries"
	"room-reserve/tests/common/builder"
	"room-reserve/tests/common/httptest"
	queriesmock "room-reserve/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockRoomQueries
	handler     *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockQueries)

	s.router.GET("/rooms", s.handler.ListRooms)
	s.router.GET("/rooms/:id", s.handler.GetRoom)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestList() {
	s.Run("success: returns the bookable room page", func() {
		page := &queries.RoomPage{
			Items:   []*queries.RoomView{builder.NewRoomBuilder().BuildView()},
			Total:   1,
			Page:    1,
			PerPage: 5,
		}

		s.mockQueries.EXPECT().List(gomock.Any(), queries.PageRequest{Page: 1}).
			Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		var response resdto.RoomPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Equal(int64(1), response.Total)
	})

	s.Run("success: trims the search filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.PageRequest{Page: 3, Search: "grande"}).
			Return(&queries.RoomPage{Items: []*queries.RoomView{}, Page: 3, PerPage: 5}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?page=3&search=%20grande%20", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *RoomHandlerTestSuite) TestGet() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String()

	s.Run("success: returns 200 OK with RoomResponse", func() {
		view := builder.NewRoomBuilder().BuildView()
		view.ID = roomID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), roomID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(roomID, response.ID)
		s.Equal(view.Name, response.Name)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room ID")
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), roomID).
			Return(nil, errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}
