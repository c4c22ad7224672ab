package repository

import (
	"time"

	"github.com/cryptorastas/marketplace-api/base/ctx"
	hcdomain "github.com/cryptorastas/marketplace-api/domain/healthcheck"
	"github.com/cryptorastas/marketplace-api/service/chain"
)

type impl struct {
	chainClient chain.Client
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(chainClient chain.Client) hcdomain.HealthCheckRepo {
	return &impl{
		chainClient: chainClient,
	}
}

func (im *impl) PingChain(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.chainClient.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping rpc node error")
		return err
	}
	return nil
}
