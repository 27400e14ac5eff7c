package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/metrics-api/internal/api/handler/router"
	"github.com/vfg2006/metrics-api/internal/usecases/recording"
	"github.com/vfg2006/metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/metrics-api/internal/usecases/sharing"
	"github.com/vfg2006/metrics-api/pkg/metrics"
)

func Healthcheck(pinger Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(pinger),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Transactions(service recording.Recorder, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/transactions",
			Method:  http.MethodPost,
			Handler: RecordTransaction(service),
		},
		{
			Path:    "/v1/transactions",
			Method:  http.MethodGet,
			Handler: ListTransactions(service, loc),
		},
		{
			Path:    "/v1/transactions",
			Method:  http.MethodDelete,
			Handler: DeleteAllTransactions(service),
		},
		{
			Path:    "/v1/transactions/:id",
			Method:  http.MethodGet,
			Handler: GetTransaction(service),
		},
		{
			Path:    "/v1/transactions/:id",
			Method:  http.MethodDelete,
			Handler: DeleteTransaction(service),
		},
	}
}

func Reports(service reporting.Reporter, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/today",
			Method:  http.MethodGet,
			Handler: TodayReport(service),
		},
		{
			Path:    "/v1/reports/week",
			Method:  http.MethodGet,
			Handler: WeekReport(service),
		},
		{
			Path:    "/v1/reports/graph",
			Method:  http.MethodGet,
			Handler: GraphReport(service),
		},
		{
			Path:    "/v1/reports/lifetime",
			Method:  http.MethodGet,
			Handler: LifetimeReport(service),
		},
		{
			Path:    "/v1/reports/snapshots",
			Method:  http.MethodGet,
			Handler: SnapshotsReport(service, loc),
		},
	}
}

func Goals(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/goals",
			Method:  http.MethodGet,
			Handler: GetGoals(service),
		},
		{
			Path:    "/v1/goals",
			Method:  http.MethodPut,
			Handler: UpdateGoals(service),
		},
	}
}

func Shares(service sharing.Sharer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/shares",
			Method:  http.MethodPost,
			Handler: CreateShare(service),
		},
		{
			Path:    "/v1/shares",
			Method:  http.MethodGet,
			Handler: ListShares(service),
		},
		{
			Path:    "/v1/shares/shared-with-me",
			Method:  http.MethodGet,
			Handler: SharedWithMe(service),
		},
		{
			Path:    "/v1/shares/:code/accept",
			Method:  http.MethodPost,
			Handler: AcceptShare(service),
		},
		{
			Path:    "/v1/shares/:code",
			Method:  http.MethodDelete,
			Handler: RevokeShare(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
