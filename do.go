package scopeguard

import "context"

// Do runs fn under a fresh [Guard] and guarantees the guard is closed on
// every exit path, including a panic inside fn. If fn returns nil, the
// guard is declared successful before closing, so success actions fire;
// otherwise failure actions fire and the error is returned unchanged.
//
// Do is the preferred entry point when the guard does not need to outlive
// a single function:
//
//	err := scopeguard.Do(func(g *scopeguard.Guard) error {
//	    res, err := acquire()
//	    if err != nil {
//	        return err
//	    }
//	    g.OnFailure(func() { res.Release() })
//	    return commit(res)
//	})
func Do(fn func(g *Guard) error, opts ...Option) error {
	g := New(opts...)
	defer g.Close()

	if err := fn(g); err != nil {
		return err
	}
	g.DeclareSuccessful()
	return nil
}

// DoContext is [Do] with context awareness: if ctx is already cancelled
// when fn returns nil, the scope is treated as failed and ctx's error is
// returned, so compensation actions still fire. The context is not
// otherwise consulted; actions themselves run to completion regardless of
// cancellation, matching the guard's best-effort cleanup contract.
func DoContext(ctx context.Context, fn func(g *Guard) error, opts ...Option) error {
	g := New(opts...)
	defer g.Close()

	if err := fn(g); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	g.DeclareSuccessful()
	return nil
}
