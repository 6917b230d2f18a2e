package cli

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"dev", "dev"},
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
		{"0.1.0-rc1", "v0.1.0-rc1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVersion(tt.input))
		})
	}
}

func TestWriteVersion(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer SetVersionInfo(origVersion, origCommit, origDate)

	SetVersionInfo("1.2.3", "abc1234", "2026-01-08T12:00:00Z")
	assert.Equal(t, "1.2.3", GetVersion())

	t.Run("full", func(t *testing.T) {
		var buf bytes.Buffer
		writeVersion(&buf, false)
		out := buf.String()

		assert.Contains(t, out, "invdash v1.2.3")
		assert.Contains(t, out, "commit: abc1234")
		assert.Contains(t, out, "built: 2026-01-08T12:00:00Z")
		assert.Contains(t, out, "go: "+runtime.Version())
		assert.Contains(t, out, "os/arch: "+runtime.GOOS+"/"+runtime.GOARCH)
	})

	t.Run("short", func(t *testing.T) {
		var buf bytes.Buffer
		writeVersion(&buf, true)
		assert.Equal(t, "1.2.3", strings.TrimSpace(buf.String()))
	})
}
