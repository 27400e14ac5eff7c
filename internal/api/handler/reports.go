package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/metrics-api/pkg/apiErrors"
	"github.com/vfg2006/metrics-api/pkg/middleware"
	"github.com/vfg2006/metrics-api/pkg/utils"
)

func TodayReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Today(r.Context(), middleware.OwnerFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, "reports-today", err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

func WeekReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Week(r.Context(), middleware.OwnerFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, "reports-week", err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

// GraphReport lê stat, scale e offset da query. Sem offset, mostra o período atual.
func GraphReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		stat, err := reporting.ParseGraphStat(query.Get("stat"))
		if err != nil {
			writeServiceError(w, r, "reports-graph", err)
			return
		}

		scale, err := reporting.ParseGraphScale(query.Get("scale"))
		if err != nil {
			writeServiceError(w, r, "reports-graph", err)
			return
		}

		offset := 0
		if raw := query.Get("offset"); raw != "" {
			offset, err = strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "offset deve ser um número inteiro", nil)
				return
			}
		}

		report, err := service.Graph(r.Context(), middleware.OwnerFromContext(r.Context()), stat, scale, offset)
		if err != nil {
			writeServiceError(w, r, "reports-graph", err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func LifetimeReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Lifetime(r.Context(), middleware.OwnerFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, "reports-lifetime", err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

func SnapshotsReport(service reporting.Reporter, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		from, err := utils.ParseDate(r.URL.Query().Get("from"), loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		to, err := utils.ParseDate(r.URL.Query().Get("to"), loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if from == nil || to == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "from e to são obrigatórios", nil)
			return
		}

		snapshots, err := service.Snapshots(r.Context(), middleware.OwnerFromContext(r.Context()), *from, *to)
		if err != nil {
			writeServiceError(w, r, "reports-snapshots", err)
			return
		}

		writeJSON(w, http.StatusOK, snapshots)
	})
}
