package bootstrap

import (
	"time"

	"room-reserve/internal/pkg/config"

	"go.uber.org/fx"
)

var BookingModule = fx.Module("booking",
	fx.Provide(
		NewBookingLocation,
	),
)

// NewBookingLocation loads the zone that booking date and time strings are
// interpreted in. A bad zone name is a deployment error, so fail fast.
func NewBookingLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Booking.TimeZone)
}
