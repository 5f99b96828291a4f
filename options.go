package scopeguard

import (
	"log/slog"

	"github.com/aretw0/scopeguard/internal/logging"
)

type config struct {
	logger *slog.Logger
	hooks  Hooks
}

// Option configures a [Guard].
type Option func(*config)

func defaultConfig() config {
	return config{
		logger: logging.NewNop(),
	}
}

// WithLogger sets a structured logger for the guard. The core's fault
// policy is unchanged — panics raised by actions are still swallowed — but
// each recovered panic is reported to the logger at error level.
//
// The default logger discards everything, preserving fully silent
// best-effort cleanup.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHooks registers observability hooks. Passing WithHooks more than once
// joins the hook sets; every registered callback fires.
func WithHooks(hooks Hooks) Option {
	return func(c *config) {
		c.hooks = c.hooks.Join(hooks)
	}
}
