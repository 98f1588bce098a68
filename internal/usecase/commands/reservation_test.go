//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"room-reserve/internal/domain/booking"
	"room-reserve/internal/domain/room"
	"room-reserve/internal/infra"
	"room-reserve/internal/infra/db"
	"room-reserve/internal/pkg/clock"
	"room-reserve/internal/pkg/errs"
	"room-reserve/internal/usecase/commands"
	"room-reserve/internal/usecase/shared"
	"room-reserve/tests/common/builder"
	queriesmock "room-reserve/tests/mock/queries"
	sharedmock "room-reserve/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	repo        *sharedmock.MockReservationRepository
	viewQueries *queriesmock.MockReservationQueries
	clk         *clock.MockClock
	commands    commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.repo = sharedmock.NewMockReservationRepository(s.ctrl)
	s.viewQueries = queriesmock.NewMockReservationQueries(s.ctrl)
	// Sunday morning, one hour before the default builder slot.
	s.clk = clock.NewMockClock(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC))
	s.commands = commands.NewReservationCommands(s.uow, s.viewQueries, s.clk, time.UTC)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

// expectWithin wires the transactional callback through the mocked Tx.
func (s *ReservationCommandsTestSuite) expectWithin() {
	s.tx.EXPECT().Reservations().Return(s.repo).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func (s *ReservationCommandsTestSuite) expectRoomRead(snap *shared.RoomSnapshot, err error) {
	s.uow.EXPECT().CommandReads().Return(s.reads)
	s.reads.EXPECT().RoomByID(gomock.Any(), gomock.Any()).Return(snap, err)
}

func (s *ReservationCommandsTestSuite) expectReservationRead(snap *shared.ReservationSnapshot, err error) {
	s.uow.EXPECT().CommandReads().Return(s.reads)
	s.reads.EXPECT().ReservationByID(gomock.Any(), gomock.Any()).Return(snap, err)
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", errors.New("no rows in result set"), infra.KindNotFound)
}

func conflictErr() error {
	return infra.WrapRepoErr("exclusion constraint", errors.New("23P01"), infra.KindConflict)
}

func dbFailureErr() error {
	return infra.WrapRepoErr("query failed", errors.New("connection refused"))
}

// ================================================================================
// Create
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("success", func() {
		b := builder.NewReservationBuilder()
		roomSnap := builder.NewRoomBuilder().BuildSnapshot()
		b.RoomID = roomSnap.ID
		returnView := b.BuildView()
		newID := returnView.ID

		s.expectRoomRead(roomSnap, nil)
		s.expectWithin()
		s.repo.EXPECT().AcquireRoomLock(gomock.Any(), gomock.Any(), roomSnap.ID).Return(nil)
		s.repo.EXPECT().FindOverlapping(gomock.Any(), gomock.Any(), roomSnap.ID, gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(nil, nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, res *booking.Reservation) (uuid.UUID, error) {
				s.Equal(roomSnap.ID, res.RoomID())
				s.Equal("2025-06-15 10:00:00", res.Slot().StartSQL())
				s.Equal("2025-06-15 11:00:00", res.Slot().EndSQL())
				return newID, nil
			})
		s.viewQueries.EXPECT().GetByIDSystem(gomock.Any(), newID).Return(returnView, nil)

		view, err := s.commands.Create(ctx, b.UserID, b.BuildCreateInput())
		s.Require().NoError(err)
		s.Equal(returnView, view)
	})

	s.Run("room not found", func() {
		b := builder.NewReservationBuilder()
		s.expectRoomRead(nil, notFoundErr())

		_, err := s.commands.Create(ctx, b.UserID, b.BuildCreateInput())
		s.ErrorIs(err, errs.ErrRoomNotFound)
	})

	s.Run("room read failure is not reported as missing", func() {
		b := builder.NewReservationBuilder()
		s.expectRoomRead(nil, dbFailureErr())

		_, err := s.commands.Create(ctx, b.UserID, b.BuildCreateInput())
		s.NotErrorIs(err, errs.ErrRoomNotFound)
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})

	s.Run("deleted room reads as not found", func() {
		b := builder.NewReservationBuilder()
		roomSnap := builder.NewRoomBuilder().
			With(func(rb *builder.RoomBuilder) { rb.RecordState = room.RecordDeleted }).
			BuildSnapshot()
		s.expectRoomRead(roomSnap, nil)

		_, err := s.commands.Create(ctx, b.UserID, b.BuildCreateInput())
		s.ErrorIs(err, errs.ErrRoomNotFound)
	})

	s.Run("unavailable room is not bookable", func() {
		b := builder.NewReservationBuilder()
		roomSnap := builder.NewRoomBuilder().
			With(func(rb *builder.RoomBuilder) { rb.Status = room.StatusUnavailable }).
			BuildSnapshot()
		s.expectRoomRead(roomSnap, nil)

		_, err := s.commands.Create(ctx, b.UserID, b.BuildCreateInput())
		s.ErrorIs(err, errs.ErrRoomNotBookable)
	})

	s.Run("validation rejection is typed", func() {
		b := builder.NewReservationBuilder().
			With(func(rb *builder.ReservationBuilder) { rb.Duration = 45 })
		roomSnap := builder.NewRoomBuilder().BuildSnapshot()
		b.RoomID = roomSnap.ID

		s.expectRoomRead(roomSnap, nil)
		s.expectWithin()
		s.repo.EXPECT().AcquireRoomLock(gomock.Any(), gomock.Any(), roomSnap.ID).Return(nil)
		// Duration fails before the conflict query; no store call expected.

		_, err := s.commands.Create(ctx, b.UserID, b.BuildCreateInput())

		var rejection *commands.Rejection
		s.Require().ErrorAs(err, &rejection)
		s.Equal(booking.ReasonInvalidDuration, rejection.Reason)
	})

	s.Run("overlap rejection", func() {
		b := builder.NewReservationBuilder()
		roomSnap := builder.NewRoomBuilder().BuildSnapshot()
		b.RoomID = roomSnap.ID
		existing, buildErr := b.BuildDomain()
		s.Require().NoError(buildErr)

		s.expectRoomRead(roomSnap, nil)
		s.expectWithin()
		s.repo.EXPECT().AcquireRoomLock(gomock.Any(), gomock.Any(), roomSnap.ID).Return(nil)
		s.repo.EXPECT().FindOverlapping(gomock.Any(), gomock.Any(), roomSnap.ID, gomock.Any(), gomock.Any(), gomock.Nil()).
			Return([]*booking.Reservation{existing}, nil)

		_, err := s.commands.Create(ctx, b.UserID, b.BuildCreateInput())

		var rejection *commands.Rejection
		s.Require().ErrorAs(err, &rejection)
		s.Equal(booking.ReasonConflict, rejection.Reason)
	})

	s.Run("exclusion constraint maps to conflict rejection", func() {
		b := builder.NewReservationBuilder()
		roomSnap := builder.NewRoomBuilder().BuildSnapshot()
		b.RoomID = roomSnap.ID

		s.expectRoomRead(roomSnap, nil)
		s.expectWithin()
		s.repo.EXPECT().AcquireRoomLock(gomock.Any(), gomock.Any(), roomSnap.ID).Return(nil)
		s.repo.EXPECT().FindOverlapping(gomock.Any(), gomock.Any(), roomSnap.ID, gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(nil, nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, conflictErr())

		_, err := s.commands.Create(ctx, b.UserID, b.BuildCreateInput())

		var rejection *commands.Rejection
		s.Require().ErrorAs(err, &rejection)
		s.Equal(booking.ReasonConflict, rejection.Reason)
	})
}

// ================================================================================
// Reschedule
// ================================================================================

func (s *ReservationCommandsTestSuite) TestReschedule() {
	ctx := context.Background()

	s.Run("success excludes the reservation itself", func() {
		b := builder.NewReservationBuilder()
		snap := b.BuildSnapshot()
		moved := builder.NewReservationBuilder().
			With(func(rb *builder.ReservationBuilder) {
				rb.RoomID = b.RoomID
				rb.Date = "2025-06-16"
				rb.Time = "14:00"
				rb.Duration = 90
			})
		returnView := moved.BuildView()

		s.expectReservationRead(snap, nil)
		s.expectWithin()
		s.repo.EXPECT().AcquireRoomLock(gomock.Any(), gomock.Any(), snap.RoomID).Return(nil)
		s.repo.EXPECT().FindOverlapping(gomock.Any(), gomock.Any(), snap.RoomID, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, _ uuid.UUID, _, _ time.Time, excludeID *uuid.UUID) ([]*booking.Reservation, error) {
				s.Require().NotNil(excludeID)
				s.Equal(snap.ID, *excludeID)
				return nil, nil
			})
		s.repo.EXPECT().UpdateSlot(gomock.Any(), gomock.Any(), snap.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, _ uuid.UUID, slot booking.TimeSlot) error {
				s.Equal("2025-06-16 14:00:00", slot.StartSQL())
				s.Equal("2025-06-16 15:30:00", slot.EndSQL())
				return nil
			})
		s.viewQueries.EXPECT().GetByIDSystem(gomock.Any(), snap.ID).Return(returnView, nil)

		view, err := s.commands.Reschedule(ctx, b.UserID, snap.ID, commands.RescheduleReservationInput{
			Date: "2025-06-16", Time: "14:00", DurationMinutes: 90,
		})
		s.Require().NoError(err)
		s.Equal(returnView, view)
	})

	s.Run("someone else's reservation reads as not found", func() {
		b := builder.NewReservationBuilder()
		snap := b.BuildSnapshot()

		s.expectReservationRead(snap, nil)

		_, err := s.commands.Reschedule(ctx, uuid.New(), snap.ID, commands.RescheduleReservationInput{
			Date: "2025-06-16", Time: "14:00", DurationMinutes: 60,
		})
		s.ErrorIs(err, errs.ErrReservationNotFound)
	})

	s.Run("reservation read failure is not reported as missing", func() {
		b := builder.NewReservationBuilder()
		snap := b.BuildSnapshot()

		s.expectReservationRead(nil, dbFailureErr())

		_, err := s.commands.Reschedule(ctx, b.UserID, snap.ID, commands.RescheduleReservationInput{
			Date: "2025-06-16", Time: "14:00", DurationMinutes: 60,
		})
		s.NotErrorIs(err, errs.ErrReservationNotFound)
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})

	s.Run("started reservation cannot be moved", func() {
		b := builder.NewReservationBuilder()
		snap := b.BuildSnapshot()
		s.clk.Set(snap.StartAt.Add(time.Minute))

		s.expectReservationRead(snap, nil)

		_, err := s.commands.Reschedule(ctx, b.UserID, snap.ID, commands.RescheduleReservationInput{
			Date: "2025-06-16", Time: "14:00", DurationMinutes: 60,
		})
		s.ErrorIs(err, errs.ErrReservationStarted)
	})

	s.Run("start boundary counts as started", func() {
		b := builder.NewReservationBuilder()
		snap := b.BuildSnapshot()
		s.clk.Set(snap.StartAt)

		s.expectReservationRead(snap, nil)

		_, err := s.commands.Reschedule(ctx, b.UserID, snap.ID, commands.RescheduleReservationInput{
			Date: "2025-06-16", Time: "14:00", DurationMinutes: 60,
		})
		s.ErrorIs(err, errs.ErrReservationStarted)
	})
}

// ================================================================================
// Cancel
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCancel() {
	ctx := context.Background()

	s.Run("success", func() {
		b := builder.NewReservationBuilder()
		snap := b.BuildSnapshot()

		s.expectReservationRead(snap, nil)
		s.expectWithin()
		s.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), snap.ID, b.UserID).Return(nil)

		err := s.commands.Cancel(ctx, b.UserID, snap.ID)
		s.NoError(err)
	})

	s.Run("missing reservation", func() {
		s.expectReservationRead(nil, notFoundErr())

		err := s.commands.Cancel(ctx, uuid.New(), uuid.New())
		s.ErrorIs(err, errs.ErrReservationNotFound)
	})

	s.Run("started reservation cannot be canceled", func() {
		b := builder.NewReservationBuilder()
		snap := b.BuildSnapshot()
		s.clk.Set(snap.StartAt.Add(time.Hour))

		s.expectReservationRead(snap, nil)

		err := s.commands.Cancel(ctx, b.UserID, snap.ID)
		s.ErrorIs(err, errs.ErrReservationStarted)
	})

	s.Run("row vanished between read and delete", func() {
		s.clk.Set(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC))
		b := builder.NewReservationBuilder()
		snap := b.BuildSnapshot()

		s.expectReservationRead(snap, nil)
		s.expectWithin()
		s.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), snap.ID, b.UserID).Return(notFoundErr())

		err := s.commands.Cancel(ctx, b.UserID, snap.ID)
		s.ErrorIs(err, errs.ErrReservationNotFound)
	})
}
