package handler

import (
	"net/http"

	"github.com/mannersmaketh/ga-audit-v2/internal/api/handler/router"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/auditing"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/authorizing"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/exporting"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/insighting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authorization(service authorizing.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/:kind/connect",
			Method:  http.MethodGet,
			Handler: Connect(service),
		},
		{
			Path:    "/v1/auth/:kind/callback",
			Method:  http.MethodGet,
			Handler: Callback(service),
		},
	}
}

func Properties(auditor auditing.Auditor, evaluator insighting.Evaluator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/properties",
			Method:  http.MethodGet,
			Handler: ListProperties(auditor),
		},
		{
			Path:    "/v1/properties/:id/audit",
			Method:  http.MethodPost,
			Handler: RunAudit(auditor, evaluator),
		},
	}
}

func Export(exporter exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/audit/export/csv",
			Method:  http.MethodPost,
			Handler: ExportCSV(exporter),
		},
		{
			Path:    "/v1/audit/export/xlsx",
			Method:  http.MethodPost,
			Handler: ExportXLSX(exporter),
		},
		{
			Path:    "/v1/audit/export/sheets",
			Method:  http.MethodPost,
			Handler: ExportSheets(exporter),
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
