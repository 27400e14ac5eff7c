package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/metrics-api/internal/domain"
	"github.com/vfg2006/metrics-api/internal/usecases/recording"
	"github.com/vfg2006/metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/metrics-api/internal/usecases/sharing"
	"github.com/vfg2006/metrics-api/pkg/apiErrors"
	"github.com/vfg2006/metrics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodyBytes limita o corpo das requisições de escrita
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
		return false
	}
	return true
}

// writeServiceError traduz os erros dos casos de uso para o envelope da API
func writeServiceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	var validationErr *reporting.ValidationError
	var field any
	if errors.As(err, &validationErr) {
		field = map[string]string{"field": validationErr.Field}
	}

	switch {
	case errors.Is(err, recording.ErrTransactionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Transação não encontrada", nil)
	case errors.Is(err, domain.ErrInvalidDeviceType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDeviceType, "Tipo de aparelho inválido", nil)
	case errors.Is(err, domain.ErrMissingDate), errors.Is(err, recording.ErrOwnerRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, recording.ErrInvalidPeriod), errors.Is(err, reporting.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Período inválido", nil)
	case errors.Is(err, reporting.ErrInvalidGoal):
		apiErrors.WriteError(w, apiErrors.ErrInvalidGoal, "Meta fora do intervalo permitido", field)
	case errors.Is(err, reporting.ErrInvalidGraphRequest):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetros do gráfico inválidos", field)
	case errors.Is(err, sharing.ErrShareNotFound):
		apiErrors.WriteError(w, apiErrors.ErrShareNotFound, "Compartilhamento não encontrado", nil)
	case errors.Is(err, sharing.ErrSelfShare):
		apiErrors.WriteError(w, apiErrors.ErrSelfShare, "Não é possível aceitar o próprio compartilhamento", nil)
	case errors.Is(err, sharing.ErrNotShareOwner):
		apiErrors.WriteError(w, apiErrors.ErrForbidden, "Compartilhamento pertence a outro vendedor", nil)
	default:
		log.ForOperation(r.Context(), operation).WithError(err).Error("Erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}
