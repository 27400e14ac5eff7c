package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	prev := logrus.StandardLogger().Out
	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	t.Cleanup(func() { logrus.SetOutput(prev) })

	return buf
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	level, err := Setup("verbose")

	assert.Error(t, err)
	assert.Equal(t, logrus.InfoLevel, level)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_DevelopmentKeepsRelevantFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	SetupTestLogger()
	buf := captureOutput(t)

	L.WithFields(Fields{
		"owner_id":  "owner-1",
		"operation": "reports-today",
		"noise":     "descartado",
	}).Info("mensagem")

	out := buf.String()
	assert.Contains(t, out, "owner_id=owner-1")
	assert.Contains(t, out, "operation=reports-today")
	assert.NotContains(t, out, "noise")
}

func TestWithFields_ProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	SetupTestLogger()
	buf := captureOutput(t)

	L.WithField("noise", "mantido").Info("mensagem")

	assert.Contains(t, buf.String(), "noise=mantido")
}

func TestWithContext_AddsOwnerAndCorrelation(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	SetupTestLogger()
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	ctx = WithOwnerID(ctx, "owner-7")

	ForOperation(ctx, "shares-list").Info("mensagem")

	out := buf.String()
	assert.Contains(t, out, "correlation_id="+id)
	assert.Contains(t, out, "owner_id=owner-7")
	assert.Contains(t, out, "operation=shares-list")
	assert.Equal(t, "owner-7", OwnerID(ctx))
}

func TestWithOwner_OverridesContextOwner(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	SetupTestLogger()
	buf := captureOutput(t)

	ctx := WithOwnerID(context.Background(), "owner-1")
	WithOwner(ctx, "owner-2").Info("mensagem")

	assert.Contains(t, buf.String(), "owner_id=owner-2")
	assert.NotContains(t, buf.String(), "owner_id=owner-1")
}
