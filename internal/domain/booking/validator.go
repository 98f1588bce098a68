package booking

import (
	"context"
	"regexp"
	"strings"
	"time"

	"room-reserve/internal/pkg/clock"
	"room-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeShape = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// OverlapStore is the one query capability validation depends on: existing
// reservations for a room whose interval intersects [start, end), with an
// optional reservation omitted (so an edit does not conflict with itself).
type OverlapStore interface {
	FindOverlapping(ctx context.Context, roomID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]*Reservation, error)
}

// Result is the outcome of interval validation: either an accepted,
// normalized [start, end) pair or a rejection reason. Rejections are ordinary
// values, not errors; the error channel of Validate is reserved for store
// failures.
type Result struct {
	ok     bool
	slot   TimeSlot
	reason Reason
}

func Accepted(slot TimeSlot) Result {
	return Result{ok: true, slot: slot}
}

func Rejected(reason Reason) Result {
	return Result{reason: reason}
}

func (r Result) OK() bool {
	return r.ok
}

// Slot returns the normalized interval. Only meaningful when OK.
func (r Result) Slot() TimeSlot {
	return r.slot
}

// Reason returns the rejection code. Empty when OK.
func (r Result) Reason() Reason {
	return r.reason
}

// Validator converts a free-form booking request into a confirmed,
// non-conflicting interval, or rejects it with a stable reason. It performs
// no writes; persisting the reservation afterwards is the caller's job, and
// the caller must run this check and its write against the same transactional
// snapshot (or under a per-room lock) to keep the two atomic.
type Validator struct {
	clock clock.Clock
	store OverlapStore
	loc   *time.Location
}

func NewValidator(clk clock.Clock, store OverlapStore, loc *time.Location) *Validator {
	if loc == nil {
		loc = time.Local
	}
	return &Validator{clock: clk, store: store, loc: loc}
}

// Validate applies the checks in fixed order: shape, calendar parse, past
// start, 30-minute alignment, duration, conflict. The first violated rule
// determines the reported reason.
func (v *Validator) Validate(ctx context.Context, req IntervalRequest) (Result, error) {
	date := strings.TrimSpace(req.Date)
	hour := strings.TrimSpace(req.Time)

	if !dateShape.MatchString(date) || !timeShape.MatchString(hour) {
		return Rejected(ReasonInvalidFormat), nil
	}

	start, err := time.ParseInLocation(SQLTimeLayout, date+" "+hour+":00", v.loc)
	if err != nil {
		return Rejected(ReasonInvalidFormat), nil
	}

	// Strict comparison: a start equal to "now" is still bookable.
	if start.Before(v.clock.Now()) {
		return Rejected(ReasonPastStart), nil
	}

	if start.Minute()%30 != 0 {
		return Rejected(ReasonUnalignedStart), nil
	}

	if req.DurationMinutes <= 0 || req.DurationMinutes%30 != 0 {
		return Rejected(ReasonInvalidDuration), nil
	}

	end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)

	overlapping, err := v.store.FindOverlapping(ctx, req.RoomID, start, end, req.ExcludeID)
	if err != nil {
		return Result{}, errs.Wrap(err, "failed to query overlapping reservations")
	}
	if len(overlapping) > 0 {
		return Rejected(ReasonConflict), nil
	}

	slot, err := NewTimeSlot(start, end)
	if err != nil {
		return Result{}, errs.Wrap(err, "computed slot is invalid")
	}
	return Accepted(slot), nil
}
