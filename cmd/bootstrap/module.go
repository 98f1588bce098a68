package bootstrap

import (
	"room-reserve/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	AuthModule,
	BookingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
