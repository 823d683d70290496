package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []LogEntry {
	t.Helper()
	var entries []LogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry LogEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line is not valid JSON: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: DEBUG, Format: JSONFormat, Output: &buf, Component: "test"})

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message", nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 4)
	assert.Equal(t, "DEBUG", entries[0].Level)
	assert.Equal(t, "INFO", entries[1].Level)
	assert.Equal(t, "WARN", entries[2].Level)
	assert.Equal(t, "ERROR", entries[3].Level)
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: WARN, Format: JSONFormat, Output: &buf})

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message", nil)

	assert.Len(t, decodeLines(t, &buf), 2)

	buf.Reset()
	log.SetLevel(DEBUG)
	log.Debug("now visible")
	assert.Len(t, decodeLines(t, &buf), 1)
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: INFO, Format: JSONFormat, Output: &buf, Component: "fetcher"})

	log.Info("fetched events", map[string]interface{}{"category": "GST", "count": 3})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "fetched events", entry.Message)
	assert.Equal(t, "fetcher", entry.Component)
	assert.Equal(t, "GST", entry.Fields["category"])
	assert.Equal(t, float64(3), entry.Fields["count"])
	assert.NotEmpty(t, entry.Timestamp)
	assert.Contains(t, entry.Caller, "logger_test.go")
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: INFO, Format: TextFormat, Output: &buf, Component: "sender"})

	log.Info("message sent", map[string]interface{}{"to": "5511"})

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "sender")
	assert.Contains(t, out, "message sent")
	assert.Contains(t, out, "5511")
	assert.False(t, json.Valid([]byte(strings.TrimSpace(out))))
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Level: INFO, Format: JSONFormat, Output: &buf})
	child := base.WithComponent("monitor")

	child.Info("check started")
	base.SetLevel(ERROR)
	child.Info("suppressed with the parent level")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "monitor", entries[0].Component)
}

func TestErrorLogging(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: INFO, Format: JSONFormat, Output: &buf})

	log.Error("send failed", errors.New("status 401"), map[string]interface{}{"attempt": 1})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "status 401", entries[0].Error)
	assert.Equal(t, float64(1), entries[0].Fields["attempt"])
}

func TestGlobalLogger(t *testing.T) {
	original := GetGlobalLogger()
	defer SetGlobalLogger(original)

	var buf bytes.Buffer
	SetGlobalLogger(New(Config{Level: INFO, Format: JSONFormat, Output: &buf}))

	Info("global info")
	Debug("global debug is filtered")
	Error("global error", errors.New("boom"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "global info", entries[0].Message)
	assert.Equal(t, "boom", entries[1].Error)
}

func TestConfigure(t *testing.T) {
	original := GetGlobalLogger()
	defer SetGlobalLogger(original)

	var buf bytes.Buffer
	SetGlobalLogger(New(Config{Level: INFO, Format: JSONFormat, Output: &buf}))

	Configure("debug", "")
	Debug("visible after configure")
	Configure("nonsense", "nonsense")
	Debug("still visible")

	assert.Len(t, decodeLines(t, &buf), 2)
}

func TestSetGlobalLoggerIgnoresNil(t *testing.T) {
	original := GetGlobalLogger()
	SetGlobalLogger(nil)
	assert.Same(t, original, GetGlobalLogger())
}

func TestParseHelpers(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"warning", WARN},
		{"Error", ERROR},
		{"fatal", FATAL},
		{"verbose", -1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.in))
		})
	}

	assert.Equal(t, JSONFormat, ParseLogFormat("json"))
	assert.Equal(t, TextFormat, ParseLogFormat("TEXT"))
	assert.Equal(t, LogFormat(-1), ParseLogFormat("xml"))
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", DEBUG.String())
	assert.Equal(t, "FATAL", FATAL.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}
