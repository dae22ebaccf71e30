package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"strategic_reminder/internal/infra/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitProductionUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(&config.AppConfig{LogLevel: "warn", Environment: "production"}, &buf)

	assert.Equal(t, logrus.WarnLevel, Get().GetLevel())
	Get().WithField("mode", "monthly").Warn("skipped")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "skipped", rec["msg"])
	assert.Equal(t, "monthly", rec["mode"])
}

func TestInitFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Init(&config.AppConfig{LogLevel: "loud", Environment: "development"}, &buf)

	assert.Equal(t, logrus.InfoLevel, Get().GetLevel())
	assert.Contains(t, buf.String(), "Invalid log level 'loud'")
}
