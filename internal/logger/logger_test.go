package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Debug(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		expectLog bool
	}{
		{
			name:      "logs when INVDASH_DEBUG is set",
			envValue:  "1",
			expectLog: true,
		},
		{
			name:      "logs when INVDASH_DEBUG is any value",
			envValue:  "true",
			expectLog: true,
		},
		{
			name:      "does not log when INVDASH_DEBUG is empty",
			envValue:  "",
			expectLog: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			if tt.envValue != "" {
				t.Setenv(DebugEnv, tt.envValue)
			} else {
				os.Unsetenv(DebugEnv)
			}

			l := New(&buf, "test")
			l.Debug("test message %s", "arg")

			if tt.expectLog {
				assert.Contains(t, buf.String(), "test message arg")
				assert.Contains(t, buf.String(), "component=test")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "poll")

	l.Info("info message %d", 42)
	l.Warn("warning message")
	l.Error("error message")

	out := buf.String()
	assert.Contains(t, out, "info message 42")
	assert.Contains(t, out, "warning message")
	assert.Contains(t, out, "error message")
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "ERR")
	assert.Equal(t, 3, strings.Count(out, "component=poll"))
}

func TestNewWithLevel(t *testing.T) {
	os.Unsetenv(DebugEnv)

	t.Run("debug level enables debug lines", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWithLevel(&buf, "x", "debug")
		l.Debug("fine grained")
		assert.Contains(t, buf.String(), "fine grained")
	})

	t.Run("warn level drops info", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWithLevel(&buf, "x", "warn")
		l.Info("chatty")
		l.Warn("important")
		assert.NotContains(t, buf.String(), "chatty")
		assert.Contains(t, buf.String(), "important")
	})

	t.Run("unknown level behaves like info", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWithLevel(&buf, "x", "verbose")
		l.Debug("hidden")
		l.Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}

func TestLogger_FormatStrings(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "")

	l.Info("int: %d, string: %s, float: %.2f", 42, "hello", 3.14159)

	output := buf.String()
	assert.Contains(t, output, "int: 42")
	assert.Contains(t, output, "string: hello")
	assert.Contains(t, output, "float: 3.14")
}

func TestNoopLogger(t *testing.T) {
	l := Noop()
	assert.NotPanics(t, func() {
		l.Debug("debug")
		l.Info("info")
		l.Warn("warn")
		l.Error("error")
	})
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %s", "msg")
	l.Info("info %s", "msg")
	l.Warn("warn %s", "msg")
	l.Error("error %s", "msg")

	require.Len(t, l.Messages, 4)

	assert.Equal(t, LogMessage{Level: "debug", Message: "debug msg"}, l.Messages[0])
	assert.Equal(t, LogMessage{Level: "info", Message: "info msg"}, l.Messages[1])
	assert.Equal(t, LogMessage{Level: "warn", Message: "warn msg"}, l.Messages[2])
	assert.Equal(t, LogMessage{Level: "error", Message: "error msg"}, l.Messages[3])
}

func TestBufferLogger_HasLevelAndContains(t *testing.T) {
	l := NewBufferLogger()

	assert.False(t, l.HasLevel("debug"))
	assert.False(t, l.Contains("error", "boom"))

	l.Debug("test")
	l.Error("boom happened")

	assert.True(t, l.HasLevel("debug"))
	assert.True(t, l.HasLevel("error"))
	assert.True(t, l.Contains("error", "boom"))
	assert.False(t, l.Contains("debug", "boom"))
}

func TestBufferLogger_Clear(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("test1")
	l.Info("test2")
	require.Len(t, l.Messages, 2)

	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestDefault(t *testing.T) {
	original := defaultLogger
	defer func() { defaultLogger = original }()

	assert.NotNil(t, Default())

	buf := NewBufferLogger()
	SetDefault(buf)

	assert.Equal(t, buf, Default())
}
