// Package http scopes a guard to each HTTP request.
//
// The middleware creates a fresh guard per request, stores it in the
// request context, and closes it after the handler returns. Success is
// declared from the response status (by default, anything below 500), so
// handlers register compensations next to the side effects they perform
// and never write explicit rollback branches.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/scopeguard"
)

type config struct {
	guardOpts []scopeguard.Option
	success   func(status int) bool
}

// Option configures the middleware.
type Option func(*config)

// WithGuardOptions forwards options (logger, hooks) to every per-request
// guard.
func WithGuardOptions(opts ...scopeguard.Option) Option {
	return func(c *config) {
		c.guardOpts = append(c.guardOpts, opts...)
	}
}

// WithSuccessPredicate overrides how the final response status maps to the
// guard's success declaration. The default treats any status below 500 as
// success.
func WithSuccessPredicate(fn func(status int) bool) Option {
	return func(c *config) {
		if fn != nil {
			c.success = fn
		}
	}
}

// Middleware returns a chi-compatible middleware that attaches a guard to
// each request. After the handler returns, the guard is declared
// successful if the success predicate accepts the response status, then
// closed. If the handler panics, the declaration is skipped, so failure
// actions fire before the panic continues up the middleware stack.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := config{
		success: func(status int) bool {
			return status < http.StatusInternalServerError
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			g := scopeguard.New(cfg.guardOpts...)
			defer g.Close()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(scopeguard.NewContext(r.Context(), g)))

			status := ww.Status()
			if status == 0 {
				// Handler wrote nothing; net/http will respond 200.
				status = http.StatusOK
			}
			if cfg.success(status) {
				g.DeclareSuccessful()
			}
		})
	}
}

// Guard returns the request's guard. If the middleware is not installed it
// returns an inert, already-spent guard, so callers can register actions
// unconditionally without nil checks; such registrations simply never
// fire.
func Guard(r *http.Request) *scopeguard.Guard {
	if g, ok := scopeguard.FromContext(r.Context()); ok {
		return g
	}
	g := scopeguard.New()
	g.Close()
	return g
}
