package appstate

import "context"

// Pending tracks the persistence of one action. Applied reports whether the
// action changed anything; a no-op action returns an already finished Pending.
type Pending struct {
	done    chan struct{}
	applied bool
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{}), applied: true}
}

func noop() *Pending {
	p := &Pending{done: make(chan struct{})}
	close(p.done)
	return p
}

// Done is closed once every write of the action has been attempted
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Applied reports whether the action mutated state
func (p *Pending) Applied() bool {
	return p.applied
}

// Wait blocks until the writes finish or ctx ends. Write failures are logged
// by the store, not returned here.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
