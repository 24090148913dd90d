package helpers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "school-erp", "production")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	line := strings.TrimSpace(strings.Split(buf.String(), "\n")[0])
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "school-erp", entry["app"])
	assert.Equal(t, "logger initialized", entry["msg"])
}

func TestNewLogger_DevelopmentIsText(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "school-erp", "development")
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.Contains(t, buf.String(), "logger initialized")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestLogError_AddsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "app", "production")
	buf.Reset()

	LogError(logger, "lookup failed", assert.AnError, logrus.Fields{"username": "alice"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "alice", entry["username"])
	assert.Equal(t, assert.AnError.Error(), entry["error"])
	assert.Equal(t, "error", entry["level"])
}
