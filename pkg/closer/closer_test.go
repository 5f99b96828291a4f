package closer_test

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/scopeguard"
	"github.com/aretw0/scopeguard/pkg/closer"
)

type fakeCloser struct {
	closed int
	err    error
}

func (f *fakeCloser) Close() error {
	f.closed++
	return f.err
}

func TestClose_InvokesCloseAndDiscardsError(t *testing.T) {
	fc := &fakeCloser{err: errors.New("close failed")}

	require.NotPanics(t, func() { closer.Close(fc)() })
	assert.Equal(t, 1, fc.closed)
}

func TestCloseFunc_DiscardsError(t *testing.T) {
	var called bool
	closer.CloseFunc(func() error {
		called = true
		return errors.New("rollback failed")
	})()

	assert.True(t, called)
}

func TestFlush_DrainsBufferedWriter(t *testing.T) {
	var sink bytes.Buffer
	bw := bufio.NewWriter(&sink)
	_, err := bw.WriteString("buffered")
	require.NoError(t, err)
	require.Zero(t, sink.Len())

	closer.Flush(bw)()

	assert.Equal(t, "buffered", sink.String())
}

func TestFlushThenClose_LIFOOrdering(t *testing.T) {
	var sink bytes.Buffer
	fc := &fakeCloser{}
	bw := bufio.NewWriter(&sink)
	_, err := bw.WriteString("payload")
	require.NoError(t, err)

	g := scopeguard.New()
	g.OnExit(closer.Close(fc))
	g.OnExit(closer.Flush(bw))
	g.Close()

	// Flush was registered last, so it fires before the close.
	assert.Equal(t, "payload", sink.String())
	assert.Equal(t, 1, fc.closed)
}

func TestRemove_DeletesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scratch")
	require.NoError(t, os.WriteFile(path, []byte("tmp"), 0o644))

	closer.Remove(path)()

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRemove_MissingFileIsQuiet(t *testing.T) {
	require.NotPanics(t, func() {
		closer.Remove(filepath.Join(t.TempDir(), "never-created"))()
	})
}

func TestCancel_InvokesCancelFunc(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	closer.Cancel(cancel)()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
