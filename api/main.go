package api

import (
	"github.com/carelink-org/rpm/authz"
	"github.com/carelink-org/rpm/billing"
	"github.com/carelink-org/rpm/clinicians"
	"github.com/carelink-org/rpm/clinics"
	"github.com/carelink-org/rpm/config"
	"github.com/carelink-org/rpm/enrollments"
	"github.com/carelink-org/rpm/logger"
	"github.com/carelink-org/rpm/measurements"
	"github.com/carelink-org/rpm/patients"
	"github.com/carelink-org/rpm/store"
	"github.com/carelink-org/rpm/timeentries"
	"go.uber.org/fx"
)

// Dependencies returns the service DI graph. The operational CLI reuses it
// for one-shot command execution.
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			config.New,
			logger.NewProductionLogger,
			logger.Suggar,
			store.NewConfig,
			store.GetConnectionString,
			store.NewClient,
			store.NewDatabase,
			clinics.NewRepository,
			clinics.NewService,
			clinicians.NewRepository,
			clinicians.NewService,
			patients.NewRepository,
			patients.NewService,
			enrollments.NewRepository,
			enrollments.NewService,
			measurements.NewRepository,
			timeentries.NewRepository,
			billing.NewDeviceDayCounter,
			billing.NewTimeAggregator,
			billing.NewReportConfig,
			billing.NewSummaries,
			billing.NewReports,
			authz.NewRequestAuthorizer,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
	}
}

func MainLoop() {
	opts := append(Dependencies(),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	)
	fx.New(opts...).Run()
}
