package scopeguard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/scopeguard"
)

func TestDo_NilErrorDeclaresSuccess(t *testing.T) {
	rec := &recorder{}

	err := scopeguard.Do(func(g *scopeguard.Guard) error {
		g.OnExit(rec.action("exit"))
		g.OnSuccess(rec.action("success"))
		g.OnFailure(rec.action("failure"))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"success", "exit"}, rec.trace)
}

func TestDo_ErrorFiresFailureChain(t *testing.T) {
	rec := &recorder{}
	sentinel := errors.New("acquire failed")

	err := scopeguard.Do(func(g *scopeguard.Guard) error {
		g.OnExit(rec.action("exit"))
		g.OnSuccess(rec.action("success"))
		g.OnFailure(rec.action("failure"))
		return sentinel
	})

	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, []string{"failure", "exit"}, rec.trace)
}

func TestDo_PanicFiresFailureChainAndPropagates(t *testing.T) {
	rec := &recorder{}

	require.PanicsWithValue(t, "scope blew up", func() {
		_ = scopeguard.Do(func(g *scopeguard.Guard) error {
			g.OnFailure(rec.action("compensate"))
			g.OnSuccess(rec.action("commit"))
			panic("scope blew up")
		})
	})

	assert.Equal(t, []string{"compensate"}, rec.trace)
}

func TestDoContext_CancelledContextIsFailure(t *testing.T) {
	rec := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())

	err := scopeguard.DoContext(ctx, func(g *scopeguard.Guard) error {
		g.OnFailure(rec.action("compensate"))
		cancel()
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"compensate"}, rec.trace)
}

func TestDoContext_LiveContextDeclaresSuccess(t *testing.T) {
	rec := &recorder{}

	err := scopeguard.DoContext(context.Background(), func(g *scopeguard.Guard) error {
		g.OnFailure(rec.action("compensate"))
		g.OnSuccess(rec.action("commit"))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"commit"}, rec.trace)
}

func TestDo_ForwardsOptions(t *testing.T) {
	var closes int
	hooks := scopeguard.Hooks{
		OnClose: func(scopeguard.CloseEvent) { closes++ },
	}

	err := scopeguard.Do(func(g *scopeguard.Guard) error {
		return nil
	}, scopeguard.WithHooks(hooks))

	require.NoError(t, err)
	assert.Equal(t, 1, closes)
}
