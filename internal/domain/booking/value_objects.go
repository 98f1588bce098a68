package booking

import (
	"errors"
	"fmt"
	"time"
)

// SQLTimeLayout is the canonical serialized form of booking timestamps.
const SQLTimeLayout = "2006-01-02 15:04:05"

// TimeSlot is a half-open interval [start, end). A slot ending exactly when
// another starts does not overlap it, so back-to-back bookings are allowed.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !end.After(start) {
		return TimeSlot{}, errors.New("end time must be after start time")
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

func (ts TimeSlot) HasStarted(now time.Time) bool {
	return !ts.start.After(now)
}

// StartSQL renders the start instant in the canonical YYYY-MM-DD HH:MM:SS form.
func (ts TimeSlot) StartSQL() string {
	return ts.start.Format(SQLTimeLayout)
}

func (ts TimeSlot) EndSQL() string {
	return ts.end.Format(SQLTimeLayout)
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}
