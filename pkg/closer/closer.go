// Package closer adapts closeable resources into scopeguard Actions.
//
// Every factory returns an Action that releases the wrapped resource and
// discards any error it reports, matching the guard's best-effort cleanup
// contract. Callers that care about a close error should close explicitly
// on the happy path and keep the guarded close as the fallback.
package closer

import (
	"context"
	"io"
	"os"

	"github.com/aretw0/scopeguard"
)

// Close returns an Action that closes c and ignores the error. It covers
// files, network connections, response bodies, and anything else
// satisfying io.Closer.
func Close(c io.Closer) scopeguard.Action {
	return func() {
		_ = c.Close()
	}
}

// CloseFunc returns an Action that invokes fn and ignores the error. Use
// it for release functions that do not satisfy io.Closer, such as
// sql.Tx.Rollback or custom teardown funcs.
func CloseFunc(fn func() error) scopeguard.Action {
	return func() {
		_ = fn()
	}
}

// Flush returns an Action that flushes w and ignores the error, for
// buffered writers like bufio.Writer that must be drained before their
// underlying sink is closed. Register the flush after the close so it
// fires first under the guard's LIFO ordering.
func Flush(w interface{ Flush() error }) scopeguard.Action {
	return func() {
		_ = w.Flush()
	}
}

// Remove returns an Action that deletes the file at path and ignores the
// error. Typical as a failure-only compensation for temp files created
// inside the scope.
func Remove(path string) scopeguard.Action {
	return func() {
		_ = os.Remove(path)
	}
}

// Cancel returns an Action that invokes a context cancel func, releasing
// the resources associated with a context created inside the scope.
func Cancel(cancel context.CancelFunc) scopeguard.Action {
	return scopeguard.Action(cancel)
}
