package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "  req-42 ")
	assert.Equal(t, "req-42", id)
	assert.Equal(t, "req-42", GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background())
	assert.Len(t, id, 36)
	assert.Equal(t, id, GetCorrelationID(ctx))

	assert.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestForContext(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	ctx, _ := WithCorrelationID(context.Background(), "req-7")
	ctx = ContextWithFields(ctx, Fields{"session_id": "s1"})
	child := ContextWithFields(ctx, Fields{"platform": "linkedin"})

	tests := []struct {
		name     string
		ctx      context.Context
		expected logrus.Fields
	}{
		{
			name:     "Contexto vazio - não deve adicionar campos",
			ctx:      context.Background(),
			expected: logrus.Fields{},
		},
		{
			name:     "Contexto da requisição - deve carregar correlação e sessão",
			ctx:      ctx,
			expected: logrus.Fields{"correlation_id": "req-7", "session_id": "s1"},
		},
		{
			name:     "Contexto derivado - deve acumular campos sem alterar o pai",
			ctx:      child,
			expected: logrus.Fields{"correlation_id": "req-7", "session_id": "s1", "platform": "linkedin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook.Reset()

			ForContext(tt.ctx).Info("registro")

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tt.expected, entry.Data)
		})
	}
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("not-a-level")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestSetup_Formatter(t *testing.T) {
	defer logrus.SetFormatter(&logrus.TextFormatter{})

	t.Setenv("APP_ENV", "production")
	Setup("info")
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	t.Setenv("APP_ENV", "")
	Setup("info")
	assert.IsType(t, &logrus.TextFormatter{}, logrus.StandardLogger().Formatter)
}
