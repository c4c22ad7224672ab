package healthcheck

import (
	"github.com/cryptorastas/marketplace-api/base/ctx"
)

// HealthCheckRepo represent the repository of the healthcheck
type HealthCheckRepo interface {
	PingChain(ctx ctx.Ctx) error
}

// HealthCheckUsecase represent the usecase of the healthcheck
type HealthCheckUsecase interface {
	Check(ctx ctx.Ctx) error
}
