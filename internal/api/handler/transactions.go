package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/metrics-api/internal/domain"
	"github.com/vfg2006/metrics-api/internal/usecases/recording"
	"github.com/vfg2006/metrics-api/pkg/apiErrors"
	"github.com/vfg2006/metrics-api/pkg/middleware"
	"github.com/vfg2006/metrics-api/pkg/utils"
)

func RecordTransaction(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input domain.NewTransaction
		if !decodeJSON(w, r, &input) {
			return
		}

		if input.DeviceType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "deviceType é obrigatório", nil)
			return
		}

		transaction, err := service.Record(r.Context(), middleware.OwnerFromContext(r.Context()), input)
		if err != nil {
			writeServiceError(w, r, "record-transaction", err)
			return
		}

		writeJSON(w, http.StatusCreated, transaction)
	})
}

// ListTransactions aceita from e to no formato YYYY-MM-DD, ambos inclusivos
func ListTransactions(service recording.Recorder, loc *time.Location) http.Handler {
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

		filter := domain.TransactionFilter{From: from}
		if to != nil {
			end := utils.StartOfDate(to.Year(), to.Month(), to.Day()+1, loc)
			filter.To = &end
		}

		transactions, err := service.List(r.Context(), middleware.OwnerFromContext(r.Context()), filter)
		if err != nil {
			writeServiceError(w, r, "list-transactions", err)
			return
		}

		writeJSON(w, http.StatusOK, transactions)
	})
}

func GetTransaction(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		transaction, err := service.Get(r.Context(), middleware.OwnerFromContext(r.Context()), id)
		if err != nil {
			writeServiceError(w, r, "get-transaction", err)
			return
		}

		writeJSON(w, http.StatusOK, transaction)
	})
}

func DeleteTransaction(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(r.Context(), middleware.OwnerFromContext(r.Context()), id); err != nil {
			writeServiceError(w, r, "delete-transaction", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeleteAllTransactions(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		removed, err := service.DeleteAll(r.Context(), middleware.OwnerFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, "delete-all-transactions", err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]int64{"removed": removed})
	})
}
