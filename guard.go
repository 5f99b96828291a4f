package scopeguard

import "github.com/aretw0/scopeguard/internal/logging"

// Action is an opaque, zero-argument unit of cleanup work. The guard never
// inspects what an action does; it only decides whether and when to run it.
type Action func()

// Guard collects cleanup actions for a single scope and runs exactly one
// class of them when the scope is left.
//
// Actions registered via [Guard.OnExit] run unconditionally. Unless the
// scope was declared successful via [Guard.DeclareSuccessful] by the time
// [Guard.Close] runs, actions registered via [Guard.OnFailure] run as well;
// if it was, actions registered via [Guard.OnSuccess] run instead.
//
// Within the selected chain, actions fire in last-registered-first order,
// mirroring reverse-order resource teardown: the most recently acquired
// resource is released first.
//
// A Guard belongs to the single flow of control that owns its scope and is
// not safe for concurrent use.
type Guard struct {
	success []Action
	failure []Action

	successful bool
	spent      bool

	cfg config
}

// New creates an empty Guard. The default configuration is fully silent:
// a discarding logger, no hooks. Close the guard on every exit path, typically with
// defer, or use [Do] which arranges that for you:
//
//	g := scopeguard.New()
//	defer g.Close()
//
//	f, err := os.Create(path)
//	if err != nil {
//	    return err
//	}
//	g.OnExit(closer.Close(f))
//	g.OnFailure(closer.Remove(path))
//
//	// ... work that may fail ...
//
//	g.DeclareSuccessful()
func New(opts ...Option) *Guard {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Guard{cfg: cfg}
}

// OnExit registers an action that runs when the scope is left, regardless
// of whether it was declared successful. The action occupies a position in
// both chains, each determined by when it was registered relative to that
// chain's other members. Returns the guard for chained registration.
func (g *Guard) OnExit(a Action) *Guard {
	g.success = append(g.success, a)
	g.failure = append(g.failure, a)
	return g
}

// OnSuccess registers an action that runs only if the scope was declared
// successful before Close. Returns the guard for chained registration.
func (g *Guard) OnSuccess(a Action) *Guard {
	g.success = append(g.success, a)
	return g
}

// OnFailure registers an action that runs only if the scope was NOT
// declared successful before Close. Registering after
// [Guard.DeclareSuccessful] is silently inert: the success flag is
// permanent, so the action can never fire. Returns the guard for chained
// registration.
func (g *Guard) OnFailure(a Action) *Guard {
	g.failure = append(g.failure, a)
	return g
}

// DeclareSuccessful marks the scope's execution as successful and discards
// the failure chain immediately. Failure-only actions registered before the
// call are dropped right away; the discard is permanent for the lifetime of
// this guard. Returns the guard.
func (g *Guard) DeclareSuccessful() *Guard {
	g.successful = true
	g.failure = nil
	return g
}

// Close runs the chain selected by the success flag: the success chain if
// [Guard.DeclareSuccessful] was called, the failure chain otherwise.
// Actions fire in last-registered-first order. A panic in one action is
// recovered and discarded so the remaining actions still run; Close itself
// never panics. Recovered values are reported through the configured logger
// and hooks, if any.
//
// Close must be invoked exactly once on every exit path of the owning
// scope, normally via defer. As a deliberate strengthening over strict
// single-use semantics, calling Close again is a no-op rather than a
// duplicate walk of the chain.
func (g *Guard) Close() {
	if g.spent {
		return
	}
	g.spent = true
	if g.cfg.logger == nil {
		g.cfg.logger = logging.NewNop()
	}

	disposition := Failure
	chain := g.failure
	if g.successful {
		disposition = Success
		chain = g.success
	} else {
		g.success = nil
	}
	g.failure = nil

	recovered := 0
	for i := len(chain) - 1; i >= 0; i-- {
		pos := len(chain) - 1 - i
		rec := invoke(chain[i])
		if rec != nil {
			recovered++
			g.cfg.logger.Error("scopeguard: recovered panic from cleanup action",
				"disposition", disposition,
				"index", pos,
				"panic", rec,
			)
		}
		if g.cfg.hooks.OnAction != nil {
			g.cfg.hooks.OnAction(ActionEvent{
				Disposition: disposition,
				Index:       pos,
				Recovered:   rec,
			})
		}
	}

	if g.cfg.hooks.OnClose != nil {
		g.cfg.hooks.OnClose(CloseEvent{
			Disposition: disposition,
			Actions:     len(chain),
			Recovered:   recovered,
		})
	}
}

// invoke runs a single action with panic recovery.
func invoke(a Action) (rec any) {
	defer func() {
		rec = recover()
	}()
	a()
	return nil
}
