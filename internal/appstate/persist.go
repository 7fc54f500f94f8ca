package appstate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ytget/esports-tracker/internal/kvstore"
	"github.com/ytget/esports-tracker/internal/logfields"
)

type entry struct {
	key   string
	value any
}

type batch struct {
	entries []entry
	pending *Pending
}

// persister writes batches in the order they were queued, one key at a time.
// Enqueue never blocks the caller.
type persister struct {
	kv     kvstore.Store
	logger *slog.Logger

	mu      sync.Mutex
	queue   []batch
	wake    chan struct{}
	closed  bool
	stopped chan struct{}
}

func newPersister(kv kvstore.Store, logger *slog.Logger) *persister {
	p := &persister{
		kv:      kv,
		logger:  logger,
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *persister) enqueue(entries ...entry) *Pending {
	pending := newPending()

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.logger.Error("Store closed, dropping write", slog.Int("keys", len(entries)))
		close(pending.done)
		return pending
	}
	p.queue = append(p.queue, batch{entries: entries, pending: pending})
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
	return pending
}

func (p *persister) next() (batch, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.queue) == 0 {
		return batch{}, false
	}
	b := p.queue[0]
	p.queue = p.queue[1:]
	return b, true
}

func (p *persister) run() {
	defer close(p.stopped)
	for {
		b, ok := p.next()
		if ok {
			p.write(b)
			continue
		}

		p.mu.Lock()
		closed := p.closed && len(p.queue) == 0
		p.mu.Unlock()
		if closed {
			return
		}
		<-p.wake
	}
}

func (p *persister) write(b batch) {
	defer close(b.pending.done)
	ctx := context.Background()
	for _, e := range b.entries {
		if err := p.set(ctx, e); err != nil {
			p.logger.Error("Failed to persist key", logfields.Key(e.key), logfields.Error(err))
			continue
		}
		p.logger.Debug("Persisted key", logfields.Key(e.key))
	}
}

func (p *persister) set(ctx context.Context, e entry) error {
	raw, err := json.Marshal(e.value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", e.key, err)
	}
	return p.kv.Set(ctx, e.key, raw)
}

// flush waits until everything queued before the call has been written
func (p *persister) flush(ctx context.Context) error {
	return p.enqueue().Wait(ctx)
}

// close drains the queue and stops the worker
func (p *persister) close(ctx context.Context) error {
	p.mu.Lock()
	already := p.closed
	p.closed = true
	p.mu.Unlock()

	if !already {
		select {
		case p.wake <- struct{}{}:
		default:
		}
	}

	select {
	case <-p.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
