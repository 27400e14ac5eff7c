// Package log encapsula o logrus com os campos de rastreio usados pela API.
package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger é o subconjunto do logrus usado pela aplicação. Os campos passam pelo
// filtro de ambiente antes de chegar à entrada.
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
}

type ctxKey uint8

const (
	correlationKey ctxKey = iota + 1
	ownerKey
)

const (
	correlationIDField = "correlation_id"
	ownerIDField       = "owner_id"
	operationField     = "operation"
)

// campos mantidos quando APP_ENV aponta para desenvolvimento
var devFields = map[string]struct{}{
	correlationIDField: {},
	operationField:     {},
	"method":           {},
	"path":             {},
	"status_code":      {},
	"duration_ms":      {},
	"error":            {},
	"stack_trace":      {},
}

type entryLogger struct {
	*logrus.Entry
}

// L é o logger global, recriado por Setup e SetupTestLogger
var L Logger = standard()

func standard() Logger {
	return entryLogger{Entry: logrus.NewEntry(logrus.StandardLogger())}
}

func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "dev", "development":
		return true
	}
	return false
}

// Setup configura o formato de texto com timestamp RFC3339 e o nível informado.
// Um nível inválido cai para info e é reportado no retorno.
func Setup(level string) (logrus.Level, error) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
	L = standard()

	return parsed, err
}

// SetupTestLogger deixa a saída compacta e em debug
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{PadLevelText: true})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)
	L = standard()
}

func keepField(key string) bool {
	if !IsDevelopment() {
		return true
	}
	if _, ok := devFields[key]; ok {
		return true
	}
	return strings.HasPrefix(key, "owner_")
}

func (l entryLogger) WithField(key string, value any) Logger {
	if !keepField(key) {
		return l
	}
	return entryLogger{Entry: l.Entry.WithField(key, value)}
}

func (l entryLogger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if keepField(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return entryLogger{Entry: l.Entry.WithFields(kept)}
}

func (l entryLogger) WithError(err error) Logger {
	return entryLogger{Entry: l.Entry.WithError(err)}
}

// WithContext copia para o logger o correlation id e o vendedor guardados no contexto
func (l entryLogger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	fields := Fields{}
	if id := GetCorrelationID(ctx); id != "" {
		fields[correlationIDField] = id
	}
	if owner := OwnerID(ctx); owner != "" {
		fields[ownerIDField] = owner
	}
	return l.WithFields(fields)
}

// WithCorrelationID gera um novo ID de correlação e o guarda no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, correlationKey, id), id
}

func GetCorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey).(string)
	return id
}

// WithOwnerID marca o contexto com o vendedor da requisição para os logs seguintes
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey, ownerID)
}

func OwnerID(ctx context.Context) string {
	owner, _ := ctx.Value(ownerKey).(string)
	return owner
}

// WithOwner cria um logger para o vendedor informado, que prevalece sobre o do contexto
func WithOwner(ctx context.Context, ownerID string) Logger {
	return L.WithContext(ctx).WithField(ownerIDField, ownerID)
}

func ForOperation(ctx context.Context, operation string) Logger {
	return L.WithContext(ctx).WithField(operationField, operation)
}
