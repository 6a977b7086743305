package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields são os campos estruturados de um registro
type Fields = logrus.Fields

type contextKey int

const (
	correlationIDKey contextKey = iota
	fieldsKey
)

const correlationIDField = "correlation_id"

// IsDevelopment indica ambiente local; APP_ENV vazio conta como desenvolvimento
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "dev", "development":
		return true
	}
	return false
}

// Setup configura o logrus global. Em desenvolvimento a saída é texto legível,
// fora dele é JSON. Níveis inválidos caem em info.
func Setup(level string) {
	if IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
			PadLevelText:    true,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// WithCorrelationID grava o ID de correlação no contexto. Um ID recebido do
// cliente é reaproveitado; sem ele, um UUID novo é gerado.
func WithCorrelationID(ctx context.Context, incoming ...string) (context.Context, string) {
	correlationID := ""
	if len(incoming) > 0 {
		correlationID = strings.TrimSpace(incoming[0])
	}
	if correlationID == "" {
		correlationID = uuid.New().String()
	}
	return context.WithValue(ctx, correlationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	correlationID, _ := ctx.Value(correlationIDKey).(string)
	return correlationID
}

// ContextWithFields acumula campos no contexto; todo registro feito com
// ForContext a partir dele passa a carregá-los
func ContextWithFields(ctx context.Context, fields Fields) context.Context {
	merged := Fields{}
	if parent, ok := ctx.Value(fieldsKey).(Fields); ok {
		for k, v := range parent {
			merged[k] = v
		}
	}
	for k, v := range fields {
		merged[k] = v
	}
	return context.WithValue(ctx, fieldsKey, merged)
}

// ForContext devolve uma entrada do logrus com o ID de correlação e os campos
// acumulados no contexto
func ForContext(ctx context.Context) *logrus.Entry {
	fields := Fields{}
	if ctx == nil {
		return logrus.WithFields(fields)
	}

	if inherited, ok := ctx.Value(fieldsKey).(Fields); ok {
		for k, v := range inherited {
			fields[k] = v
		}
	}
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		fields[correlationIDField] = correlationID
	}
	return logrus.WithFields(fields)
}
