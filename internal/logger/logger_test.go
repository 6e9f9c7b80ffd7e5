package logger

import (
	"bytes"
	"context"
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInfoLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Info("rendered", "rows", 2)
	log.V(1).Info("hidden detail")
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.Contains(t, out, "rendered")
	assert.Contains(t, out, `"rows": 2`)
	assert.NotContains(t, out, "hidden detail")
}

func TestNewDebugLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := New(&buf, true)
	log.V(1).Info("shown detail", "style", "grid")
	require.NoError(t, log.Sync())
	assert.Contains(t, buf.String(), "shown detail")
	assert.Contains(t, buf.String(), "grid")
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	log := Discard()
	log.Info("nothing")
	assert.NoError(t, log.Sync())
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := New(&buf, false)
	ctx := WithLogger(context.Background(), log.Logger)
	FromContext(ctx).Info("from context")
	assert.Contains(t, buf.String(), "from context")
}

func TestFromContextWithoutLogger(t *testing.T) {
	t.Parallel()
	log := FromContext(context.Background())
	assert.NotPanics(t, func() { log.Info("dropped") })
}

func TestIsIgnorableSyncError(t *testing.T) {
	t.Parallel()
	assert.True(t, isIgnorableSyncError(&os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.EINVAL}))
	assert.True(t, isIgnorableSyncError(syscall.ENOTTY))
	assert.True(t, isIgnorableSyncError(errors.New("sync: The handle is invalid.")))
	assert.False(t, isIgnorableSyncError(errors.New("disk full")))
}
