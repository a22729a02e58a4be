package viewmodel

import "context"

// Scope is the lifecycle of one visible screen. Work started while the
// screen is visible is cancelled when the hosting shell closes the scope on
// teardown.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewScope derives a screen scope from the application context
func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Context returns the scope's context for launching fetches
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Close cancels every fetch still in flight under this scope
func (s *Scope) Close() {
	s.cancel()
}
