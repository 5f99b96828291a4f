/*
Package scopeguard ties cleanup and compensation actions to the lifetime of
a lexical scope, running exactly one class of them when the scope is left.

A [Guard] owns two independent action chains. Actions registered with
[Guard.OnExit] always run at close time. Actions registered with
[Guard.OnFailure] run unless the scope was declared successful via
[Guard.DeclareSuccessful]; actions registered with [Guard.OnSuccess] run
only if it was. Within the selected chain, actions fire in
last-registered-first order, so the most recently acquired resource is
released first.

This is the classic scope guard pattern: a deterministic alternative to
error-handler-based cleanup. Instead of mirroring every early return with
its own teardown code, the scope registers each undo step right where the
corresponding resource is acquired, and the guard replays the right steps
no matter how the scope is exited.

# Usage

Go's deferred calls are the scope-exit mechanism that triggers the guard:

	func provision(path string) error {
	    g := scopeguard.New()
	    defer g.Close()

	    f, err := os.Create(path)
	    if err != nil {
	        return err
	    }
	    g.OnExit(closer.Close(f))
	    g.OnFailure(closer.Remove(path))

	    if err := write(f); err != nil {
	        return err // file is closed, then removed
	    }

	    g.DeclareSuccessful()
	    return nil // file is closed and kept
	}

[Do] packages the same shape as a single call: it closes the guard on every
exit path (including panics) and declares success when the wrapped function
returns nil.

# Fault Policy

Cleanup is best effort. A panic in one action is recovered and discarded so
the remaining actions in the chain still run, and [Guard.Close] itself
never panics or returns an error. The guard stays silent by default; use
[WithLogger] to record swallowed panics, or [WithHooks] to observe each
action (the pkg/adapters/prometheus package turns these hooks into
counters).

# Adapters

The convenience layer lives outside the core:

  - github.com/aretw0/scopeguard/pkg/closer wraps closeable resources
    (io.Closer, flushers, temp files, cancel funcs) into Actions.
  - github.com/aretw0/scopeguard/pkg/adapters/http provides chi-friendly
    middleware that scopes a guard to each request and declares success
    from the response status.
  - github.com/aretw0/scopeguard/pkg/adapters/prometheus exports guard
    activity as Prometheus counters.

# Ownership

A Guard belongs to the single flow of control that owns its scope. It is
not safe for concurrent use; callers sharing one guard across goroutines
must synchronize registration and the single Close externally. After Close
the guard is spent: further registrations are accepted but never fire, and
a second Close is a no-op.
*/
package scopeguard
