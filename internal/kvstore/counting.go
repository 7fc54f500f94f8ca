package kvstore

import (
	"context"
	"encoding/json"
	"sync"
)

var _ Store = (*Counting)(nil)

// Counting wraps a Store and counts calls per operation. Failures can be
// injected per operation to exercise error paths.
type Counting struct {
	Store

	mu    sync.Mutex
	calls map[string]int
	fail  map[string]error
	keys  []string
}

// NewCounting wraps s
func NewCounting(s Store) *Counting {
	return &Counting{Store: s, calls: make(map[string]int), fail: make(map[string]error)}
}

// Calls returns how many times op was invoked
func (c *Counting) Calls(op string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[op]
}

// SetKeys returns the keys passed to Set, in call order
func (c *Counting) SetKeys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// FailOn makes every call to op (and, for set, to op+":"+key) return err.
// A nil err clears the failure.
func (c *Counting) FailOn(op string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		delete(c.fail, op)
		return
	}
	c.fail[op] = err
}

func (c *Counting) record(op, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[op]++
	if op == OpSet {
		c.keys = append(c.keys, key)
		if err, ok := c.fail[op+":"+key]; ok {
			return err
		}
	}
	return c.fail[op]
}

func (c *Counting) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	if err := c.record(OpGet, key); err != nil {
		return nil, false, err
	}
	return c.Store.Get(ctx, key)
}

func (c *Counting) Set(ctx context.Context, key string, value json.RawMessage) error {
	if err := c.record(OpSet, key); err != nil {
		return err
	}
	return c.Store.Set(ctx, key, value)
}

func (c *Counting) Delete(ctx context.Context, key string) error {
	if err := c.record(OpDelete, key); err != nil {
		return err
	}
	return c.Store.Delete(ctx, key)
}

func (c *Counting) Clear(ctx context.Context) error {
	if err := c.record(OpClear, ""); err != nil {
		return err
	}
	return c.Store.Clear(ctx)
}

func (c *Counting) Has(ctx context.Context, key string) (bool, error) {
	if err := c.record(OpHas, key); err != nil {
		return false, err
	}
	return c.Store.Has(ctx, key)
}

func (c *Counting) GetAll(ctx context.Context) (map[string]json.RawMessage, error) {
	if err := c.record(OpGetAll, ""); err != nil {
		return nil, err
	}
	return c.Store.GetAll(ctx)
}
