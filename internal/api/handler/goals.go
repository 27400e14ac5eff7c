package handler

import (
	"net/http"

	"github.com/vfg2006/metrics-api/internal/domain"
	"github.com/vfg2006/metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/metrics-api/pkg/middleware"
)

func GetGoals(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		settings, err := service.Goals(r.Context(), middleware.OwnerFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, "goals", err)
			return
		}

		writeJSON(w, http.StatusOK, settings)
	})
}

func UpdateGoals(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input domain.GoalSettings
		if !decodeJSON(w, r, &input) {
			return
		}

		settings, err := service.UpdateGoals(r.Context(), middleware.OwnerFromContext(r.Context()), input)
		if err != nil {
			writeServiceError(w, r, "update-goals", err)
			return
		}

		writeJSON(w, http.StatusOK, settings)
	})
}
