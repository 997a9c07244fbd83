package gateway_fx

import (
	"go.uber.org/fx"
	"juarapay/internal/config"
	"juarapay/internal/gateway"
)

var Module = fx.Provide(
	provideGatewayClient,
)

func provideGatewayClient(cfg config.Config) gateway.Client {
	return gateway.NewMidtransClient(cfg.Midtrans, cfg.Payment)
}
