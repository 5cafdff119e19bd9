package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/resi/internal/app"
	"github.com/polkiloo/resi/internal/config"
	"github.com/polkiloo/resi/internal/logger"
	"github.com/polkiloo/resi/internal/pkg/auth"
	"github.com/polkiloo/resi/internal/server/http/handlers"
	"github.com/polkiloo/resi/internal/server/http/router"
	"github.com/polkiloo/resi/internal/storage/postgres"
	"github.com/polkiloo/resi/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(
			func(f *app.ReceiptFacade) handlers.Facade { return f },
			func(s *postgres.Storage) router.HealthChecker { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
