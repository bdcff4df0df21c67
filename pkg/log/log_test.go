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
	buf := &bytes.Buffer{}
	original := logrus.StandardLogger().Out
	logrus.SetOutput(buf)
	t.Cleanup(func() { logrus.SetOutput(original) })
	return buf
}

func TestForContext_CorrelationID(t *testing.T) {
	SetupTestLogger()
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	assert.Equal(t, id, GetCorrelationID(ctx))

	ForContext(ctx).Info("dashboard: loaded")
	assert.Contains(t, buf.String(), id)
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	SetupTestLogger()
	Configure("development")
	t.Cleanup(func() { Configure("test") })
	buf := captureOutput(t)

	L.WithFields(Fields{"ad_id": "ad-1", "rows": 10}).Info("dashboard: loaded")

	assert.Contains(t, buf.String(), "ad_id=ad-1")
	assert.NotContains(t, buf.String(), "rows=10")
}

func TestWithFields_Production(t *testing.T) {
	SetupTestLogger()
	Configure("production")
	t.Cleanup(func() { Configure("test") })
	buf := captureOutput(t)

	L.WithFields(Fields{"rows": 10}).Info("dashboard: loaded")

	assert.Contains(t, buf.String(), "rows=10")
}
