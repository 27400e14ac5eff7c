package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de identificação e de recursos
	ErrMissingOwner     = "OWN_001" // Cabeçalho de identificação ausente
	ErrForbidden        = "OWN_002" // Recurso pertence a outro vendedor
	ErrTooManyRequests  = "OWN_003" // Limite de requisições excedido
	ErrNotFound         = "RES_001" // Recurso não encontrado
	ErrConflict         = "RES_002" // Conflito de estado
	ErrMethodNotAllowed = "RES_003" // Método não suportado pela rota
	ErrShareNotFound    = "SHR_001" // Código de compartilhamento inexistente
	ErrSelfShare        = "SHR_002" // Vendedor aceitando o próprio convite

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidGoal         = "VAL_004" // Meta fora do intervalo permitido
	ErrInvalidDeviceType   = "VAL_005" // Tipo de aparelho desconhecido

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrServiceDisabled   = "SRV_003" // Serviço desabilitado por configuração
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingOwner:        http.StatusUnauthorized,
	ErrForbidden:           http.StatusForbidden,
	ErrTooManyRequests:     http.StatusTooManyRequests,
	ErrNotFound:            http.StatusNotFound,
	ErrConflict:            http.StatusConflict,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrShareNotFound:       http.StatusNotFound,
	ErrSelfShare:           http.StatusBadRequest,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidGoal:         http.StatusUnprocessableEntity,
	ErrInvalidDeviceType:   http.StatusUnprocessableEntity,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrServiceDisabled:     http.StatusServiceUnavailable,
}

// APIError é o envelope de erro devolvido em todas as respostas de falha
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func New(code, message string) APIError {
	return APIError{Code: code, Message: message}
}

func (e APIError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// WithDetails devolve uma cópia do erro com os detalhes informados
func (e APIError) WithDetails(details any) APIError {
	e.Details = details
	return e
}

// Status devolve o status HTTP do código, ou 500 para códigos desconhecidos
func Status(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (e APIError) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(e.Code))
	_ = json.NewEncoder(w).Encode(e)
}

func WriteError(w http.ResponseWriter, code string, message string, details any) {
	New(code, message).WithDetails(details).Write(w)
}
