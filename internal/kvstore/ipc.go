package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ytget/esports-tracker/internal/logfields"
)

// Operation names carried by messages
const (
	OpGet    = "get"
	OpSet    = "set"
	OpDelete = "delete"
	OpClear  = "clear"
	OpHas    = "has"
	OpGetAll = "getAll"
)

type request struct {
	ctx   context.Context
	op    string
	key   string
	value json.RawMessage
	reply chan response
}

type response struct {
	value json.RawMessage
	found bool
	all   map[string]json.RawMessage
	err   error
}

// Server owns a backend and answers requests one at a time on its own
// goroutine. Nothing else touches the backend while the server runs.
type Server struct {
	backend  Store
	logger   *slog.Logger
	requests chan request
	done     chan struct{}
	stopOnce sync.Once
	stopped  chan struct{}
}

// Serve starts a server for backend
func Serve(backend Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		backend:  backend,
		logger:   logger,
		requests: make(chan request),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go s.loop()
	return s
}

// Connect starts a server for backend and returns a client bound to it.
// Closing the client stops the server and closes the backend.
func Connect(backend Store, logger *slog.Logger) *Client {
	return &Client{server: Serve(backend, logger), owner: true}
}

func (s *Server) loop() {
	defer close(s.stopped)
	for {
		select {
		case <-s.done:
			return
		case req := <-s.requests:
			req.reply <- s.handle(req)
		}
	}
}

func (s *Server) handle(req request) (resp response) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Store handler panicked", slog.String("op", req.op), logfields.Key(req.key), slog.Any("panic", r))
			resp = response{err: fmt.Errorf("kvstore: %s %q failed: %v", req.op, req.key, r)}
		}
	}()

	ctx := req.ctx
	switch req.op {
	case OpGet:
		resp.value, resp.found, resp.err = s.backend.Get(ctx, req.key)
	case OpSet:
		resp.err = s.backend.Set(ctx, req.key, req.value)
	case OpDelete:
		resp.err = s.backend.Delete(ctx, req.key)
	case OpClear:
		resp.err = s.backend.Clear(ctx)
	case OpHas:
		resp.found, resp.err = s.backend.Has(ctx, req.key)
	case OpGetAll:
		resp.all, resp.err = s.backend.GetAll(ctx)
	default:
		resp.err = fmt.Errorf("kvstore: unknown operation %q", req.op)
	}
	return resp
}

// Client creates a new client for the server
func (s *Server) Client() *Client {
	return &Client{server: s}
}

// Stop ends the request loop and closes the backend
func (s *Server) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		close(s.done)
		<-s.stopped
		err = s.backend.Close()
	})
	return err
}

var _ Store = (*Client)(nil)

// Client implements Store by sending each call to a Server. Values are
// copied on the way in and out so neither side can alias the other's memory.
type Client struct {
	server *Server
	owner  bool
}

func (c *Client) call(ctx context.Context, req request) (response, error) {
	req.ctx = ctx
	req.reply = make(chan response, 1)

	select {
	case c.server.requests <- req:
	case <-ctx.Done():
		return response{}, ctx.Err()
	case <-c.server.done:
		return response{}, ErrClosed
	}

	select {
	case resp := <-req.reply:
		return resp, resp.err
	case <-ctx.Done():
		return response{}, ctx.Err()
	}
}

func (c *Client) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	resp, err := c.call(ctx, request{op: OpGet, key: key})
	if err != nil {
		return nil, false, err
	}
	return cloneRaw(resp.value), resp.found, nil
}

func (c *Client) Set(ctx context.Context, key string, value json.RawMessage) error {
	_, err := c.call(ctx, request{op: OpSet, key: key, value: cloneRaw(value)})
	return err
}

func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.call(ctx, request{op: OpDelete, key: key})
	return err
}

func (c *Client) Clear(ctx context.Context) error {
	_, err := c.call(ctx, request{op: OpClear})
	return err
}

func (c *Client) Has(ctx context.Context, key string) (bool, error) {
	resp, err := c.call(ctx, request{op: OpHas, key: key})
	if err != nil {
		return false, err
	}
	return resp.found, nil
}

func (c *Client) GetAll(ctx context.Context) (map[string]json.RawMessage, error) {
	resp, err := c.call(ctx, request{op: OpGetAll})
	if err != nil {
		return nil, err
	}
	return cloneAll(resp.all), nil
}

// Close stops the server when this client started it
func (c *Client) Close() error {
	if !c.owner {
		return nil
	}
	return c.server.Stop()
}
