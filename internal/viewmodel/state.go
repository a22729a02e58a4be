package viewmodel

import (
	"context"
	"sync"

	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// Phase is the finite state every screen renders from.
type Phase int

const (
	PhaseInitial Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "Initial"
	case PhaseLoading:
		return "Loading"
	case PhaseSuccess:
		return "Success"
	case PhaseError:
		return "Error"
	default:
		return "Unknown"
	}
}

// State carries the phase plus its payload: Data on Success, Message on
// Error, neither otherwise.
type State[T any] struct {
	Phase   Phase
	Data    T
	Message string
}

// Holder is the single observable state value of one screen flow. Fetches
// launched through Load are serialized cancel-previous-on-new: starting a
// new fetch cancels the in-flight one, and a superseded fetch can never
// overwrite newer state, so the visible sequence is always
// Loading -> Success|Error for the latest request.
type Holder[T any] struct {
	mu        sync.Mutex
	state     State[T]
	gen       uint64
	cancel    context.CancelFunc
	listeners []func(State[T])
}

// NewHolder creates a holder in the Initial phase
func NewHolder[T any]() *Holder[T] {
	return &Holder[T]{}
}

// Get returns the current state
func (h *Holder[T]) Get() State[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Subscribe registers a listener called on every transition, starting with
// the current state. It returns an unsubscribe func.
func (h *Holder[T]) Subscribe(fn func(State[T])) func() {
	h.mu.Lock()
	h.listeners = append(h.listeners, fn)
	idx := len(h.listeners) - 1
	current := h.state
	h.mu.Unlock()

	fn(current)

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if idx < len(h.listeners) {
			h.listeners[idx] = nil
		}
	}
}

// setLocked stores the state and snapshots the listeners to notify. Callers
// hold h.mu; the snapshot is invoked through notify after unlocking so a
// listener can call back into the holder.
func (h *Holder[T]) setLocked(state State[T]) []func(State[T]) {
	h.state = state
	listeners := make([]func(State[T]), len(h.listeners))
	copy(listeners, h.listeners)
	return listeners
}

func (h *Holder[T]) notify(listeners []func(State[T]), state State[T]) {
	for _, fn := range listeners {
		if fn != nil {
			fn(state)
		}
	}
}

// Reset puts the holder back to Initial and cancels any in-flight fetch
func (h *Holder[T]) Reset() {
	var zero T
	st := State[T]{Phase: PhaseInitial, Data: zero}

	h.mu.Lock()
	h.gen++
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	listeners := h.setLocked(st)
	h.mu.Unlock()

	h.notify(listeners, st)
}

// Fail moves straight to Error without passing through Loading. Used for
// client-side validation failures, which must never look like a fetch.
func (h *Holder[T]) Fail(err error) {
	var zero T
	st := State[T]{Phase: PhaseError, Data: zero, Message: apperrors.UserMessage(err)}

	h.mu.Lock()
	h.gen++
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	listeners := h.setLocked(st)
	h.mu.Unlock()

	h.notify(listeners, st)
}

// Set publishes a Success state directly, outside any fetch
func (h *Holder[T]) Set(data T) {
	st := State[T]{Phase: PhaseSuccess, Data: data}

	h.mu.Lock()
	h.gen++
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	listeners := h.setLocked(st)
	h.mu.Unlock()

	h.notify(listeners, st)
}

// Load publishes Loading, runs fetch on its own goroutine and publishes the
// outcome, unless a newer Load, Reset or Fail superseded it first. The
// returned channel closes when this fetch has finished (either way); the
// shell ignores it, tests wait on it.
func (h *Holder[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) <-chan struct{} {
	var zero T
	loading := State[T]{Phase: PhaseLoading, Data: zero}

	h.mu.Lock()
	h.gen++
	gen := h.gen
	if h.cancel != nil {
		h.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	listeners := h.setLocked(loading)
	h.mu.Unlock()

	h.notify(listeners, loading)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()

		data, err := fetch(fetchCtx)

		st := State[T]{Phase: PhaseSuccess, Data: data}
		if err != nil {
			st = State[T]{Phase: PhaseError, Data: zero, Message: apperrors.UserMessage(err)}
		}

		// The staleness check and the state write share one lock
		// acquisition: once a newer Load, Reset or Fail has bumped gen,
		// this fetch can no longer slip a publish in between.
		h.mu.Lock()
		if gen != h.gen {
			h.mu.Unlock()
			return
		}
		listeners := h.setLocked(st)
		h.mu.Unlock()

		h.notify(listeners, st)
	}()

	return done
}
