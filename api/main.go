package api

import (
	"context"
	"fmt"

	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/plemya-health/healthfeed/bodymap"
	"github.com/plemya-health/healthfeed/checkins"
	"github.com/plemya-health/healthfeed/config"
	"github.com/plemya-health/healthfeed/diagnostics"
	"github.com/plemya-health/healthfeed/errors"
	"github.com/plemya-health/healthfeed/feed"
	"github.com/plemya-health/healthfeed/labs"
	"github.com/plemya-health/healthfeed/logger"
	"github.com/plemya-health/healthfeed/measurements"
	"github.com/plemya-health/healthfeed/scores"
	"github.com/plemya-health/healthfeed/sessions"
	"github.com/plemya-health/healthfeed/store"
	"github.com/plemya-health/healthfeed/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Start(e *echo.Echo, cfg *config.Config, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(fmt.Sprintf(":%v", cfg.HttpPort)); err != nil {
					fmt.Println(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return err
			}

			// It's important this is set after mongo is initialized, which is ensured
			// by taking a dependency on mongo in the constructor, because lifecycle hooks
			// are executed in topological order
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

func NewServer(handler *Handler, healthCheck *HealthCheck, zapLogger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(echozap.ZapLogger(zapLogger))

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	RegisterRoutes(e, handler)

	return e, nil
}

// Dependencies returns the full DI graph of the service. It is shared
// between the server entrypoint and the CLI so one-shot commands resolve
// the same services the server does.
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			config.NewConfig,
			logger.NewProductionLogger,
			logger.Suggar,
			store.NewConfig,
			store.GetConnectionString,
			store.NewClient,
			store.NewDatabase,
			diagnostics.NewRepository,
			diagnostics.NewService,
			labs.NewRepository,
			labs.NewService,
			sessions.NewRepository,
			sessions.NewService,
			checkins.NewRepository,
			checkins.NewService,
			measurements.NewRepository,
			measurements.NewService,
			scores.NewRepository,
			scores.NewService,
			users.NewRepository,
			users.NewService,
			bodymap.NewService,
			feed.NewService,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
	}
}

func MainLoop() {
	opts := append(
		Dependencies(),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	)
	fx.New(opts...).Run()
}
