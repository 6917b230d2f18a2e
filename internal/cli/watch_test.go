package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rileyhilliard/invdash/internal/errors"
	"github.com/rileyhilliard/invdash/internal/poll"
	"github.com/rileyhilliard/invdash/internal/source"
	"github.com/rileyhilliard/invdash/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticStatus(t *testing.T, doc string) source.StatusFunc {
	t.Helper()
	snap, err := status.Decode([]byte(doc))
	require.NoError(t, err)
	return func(ctx context.Context) (*status.Snapshot, error) {
		return snap, nil
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("broken pipe")
}

func TestRunPlain_PrintsFirstPoll(t *testing.T) {
	ctrl := poll.New(poll.Options{Status: staticStatus(t, testStatus)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	require.NoError(t, runPlain(ctx, ctrl, &buf))

	out := buf.String()
	assert.Contains(t, out, "BATTERY\n")
	assert.Contains(t, out, "voltage  48.2")
	assert.Contains(t, out, "Last update: ")
}

func TestRunPlain_WriteError(t *testing.T) {
	ctrl := poll.New(poll.Options{Status: staticStatus(t, testStatus), Interval: time.Hour})

	err := runPlain(context.Background(), ctrl, failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestWritePlainUpdate_Error(t *testing.T) {
	var buf bytes.Buffer
	u := poll.Update{Err: errors.New(errors.ErrFetch, "Device returned HTTP 503", "")}
	require.NoError(t, writePlainUpdate(&buf, u, "Connection error"))
	assert.Equal(t, "Connection error: Device returned HTTP 503\n\n", buf.String())
}

func TestWatchCommand_RejectsShortInterval(t *testing.T) {
	withFlags(t)

	err := watchCommand(watchOptions{interval: 100 * time.Millisecond, plain: true})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}
