package bootstrap

import (
	"room-reserve/internal/pkg/authtoken"
	"room-reserve/internal/pkg/config"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		NewTokenVerifier,
	),
)

func NewTokenVerifier(cfg config.Config) authtoken.Verifier {
	return authtoken.NewVerifier(cfg.Auth)
}
