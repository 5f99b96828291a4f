package scopeguard

// Disposition identifies which chain a guard dispatched at close time.
type Disposition int

const (
	// Failure is the default disposition: the scope was left without a
	// call to [Guard.DeclareSuccessful].
	Failure Disposition = iota

	// Success means the scope was declared successful before close.
	Success
)

func (d Disposition) String() string {
	if d == Success {
		return "success"
	}
	return "failure"
}

// Hooks carries optional observability callbacks for a guard. All fields
// may be nil. Callbacks run synchronously inside [Guard.Close] and must not
// panic; a panicking hook breaks Close's never-panics contract.
type Hooks struct {
	// OnAction fires after each action in the selected chain has run.
	OnAction func(ActionEvent)

	// OnClose fires once, after the selected chain has been walked.
	OnClose func(CloseEvent)
}

// ActionEvent describes a single action invocation during close.
type ActionEvent struct {
	// Disposition is the chain the action belonged to.
	Disposition Disposition

	// Index is the action's position in firing order, starting at zero
	// for the last-registered action.
	Index int

	// Recovered holds the recovered panic value if the action panicked,
	// nil otherwise.
	Recovered any
}

// CloseEvent summarizes one completed close.
type CloseEvent struct {
	// Disposition is the chain that was dispatched.
	Disposition Disposition

	// Actions is the number of actions in the dispatched chain.
	Actions int

	// Recovered is the number of actions whose panic was swallowed.
	Recovered int
}

// Join combines two hook sets into one that invokes h's callbacks first,
// then other's. Nil callbacks on either side are skipped.
func (h Hooks) Join(other Hooks) Hooks {
	return Hooks{
		OnAction: joinHook(h.OnAction, other.OnAction),
		OnClose:  joinHook(h.OnClose, other.OnClose),
	}
}

func joinHook[E any](first, second func(E)) func(E) {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}
	return func(ev E) {
		first(ev)
		second(ev)
	}
}
