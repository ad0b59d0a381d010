package api

import (
	"context"
	"fmt"

	"github.com/brpaz/echozap"
	"github.com/carelink-org/rpm/authz"
	"github.com/carelink-org/rpm/config"
	"github.com/carelink-org/rpm/errors"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func NewServer(handler *Handler, healthCheck *HealthCheck, authorizer authz.RequestAuthorizer, logger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// Skip auth and request logging for the readiness probe
	skipper := RouteSkipper("/ready")

	e.Use(middleware.Recover())
	e.Use(echozap.ZapLogger(logger))
	e.Use(NewAuthzMiddleware(authorizer, AuthzMiddlewareOpts{
		Skipper: skipper,
	}))

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	e.GET("/v1/patients/:patientId/billing-summary", handler.GetPatientBillingSummary)
	e.GET("/v1/clinics/:clinicId/billing-report", handler.GetClinicBillingReport)

	return e, nil
}

func Start(e *echo.Echo, cfg *config.Config, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(fmt.Sprintf(":%d", cfg.HttpPort)); err != nil {
					logger.Infow("http server stopped", zap.Error(err))
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
