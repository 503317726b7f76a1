package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		expectLog bool
	}{
		{"debug enabled", true, true},
		{"debug disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(&buf, "[test]", tt.debug)
			l.Debug("test message %s", "arg")

			if tt.expectLog {
				assert.Contains(t, buf.String(), "[test] test message arg")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNew_InfoWarnError(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "[ingest]", false)

	l.Info("accepted %d entities", 3)
	l.Warn("slow consumer")
	l.Error("decode failed: %s", "bad json")

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "[ingest] accepted 3 entities")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "[ingest] slow consumer")
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "[ingest] decode failed: bad json")
}

func TestNew_NoPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "", false)
	l.Info("plain")
	assert.Contains(t, buf.String(), "\tplain")
}

func TestNewEnvLogger_RespectsDebugEnv(t *testing.T) {
	t.Setenv(DebugEnv, "1")
	l, ok := NewEnvLogger("[env]").(*zapLogger)
	require.True(t, ok)
	assert.True(t, l.sugar.Desugar().Core().Enabled(-1), "debug level should be enabled")
}

func TestNoop(t *testing.T) {
	l := Noop()
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("x")
		l.Warn("x")
		l.Error("x")
	})
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("warn %d", 3)
	l.Error("error %d", 4)

	require.Len(t, l.Messages, 4)
	assert.Equal(t, LogMessage{Level: "info", Message: "info 2"}, l.Messages[1])
	assert.True(t, l.HasLevel("warn"))
	assert.False(t, l.HasLevel("fatal"))

	l.Clear()
	assert.Empty(t, l.Messages)
	assert.False(t, l.HasLevel("debug"))
}

func TestDefaultAndSetDefault(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	buf := NewBufferLogger()
	SetDefault(buf)
	Default().Info("hello")

	assert.True(t, buf.HasLevel("info"))
}
