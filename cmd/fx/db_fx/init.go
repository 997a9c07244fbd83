package db_fx

import (
	"context"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"juarapay/internal/config"
	"juarapay/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(registerClose),
)

func provideDB(cfg config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg.Database.URL)
}

func registerClose(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
}
