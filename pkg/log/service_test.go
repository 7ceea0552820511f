package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/InfoRubix/filecase-tracking-management-system/internal/config/server"
)

func TestParse(t *testing.T) {
	assert.Equal(t, Debug, Parse("debug"))
	assert.Equal(t, Info, Parse("INFO"))
	assert.Equal(t, Warn, Parse(" warning "))
	assert.Equal(t, Error, Parse("Error"))
	assert.Equal(t, Info, Parse("loud"))
}

func TestLoggerService_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerServiceWithWriter("filecase", config.LogServerConfig{Level: "WARN"}, &buf)

	logger.Debug("hidden %d", 1)
	logger.Info("hidden too")
	logger.Warn("rack %s stale", "7")
	logger.Error("store down")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN  [filecase] rack 7 stale")
	assert.Contains(t, out, "ERROR [filecase] store down")
	assert.NotContains(t, out, "\033[")
}

func TestLoggerService_NamedSharesWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerServiceWithWriter("filecase", config.LogServerConfig{Level: "DEBUG"}, &buf)

	logger.Named("archive").Named("cache").Info("rebuilt")
	assert.Contains(t, buf.String(), "[filecase/archive/cache] rebuilt")
}

func TestLoggerService_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerServiceWithWriter("api", config.LogServerConfig{Level: "INFO", JSON: true}, &buf)

	logger.Info("100% done")

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "api", entry.Service)
	assert.Equal(t, "100% done", entry.Message)
}
