// Package hub maps event names to signals so loosely coupled packages can
// connect and fire by name alone. Signals are created lazily on first use and
// all of a hub's signals share one runner pool.
package hub

import (
	"errors"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/brightparty/signals/flare"
)

var ErrEmptyName = errors.New("signal name can't be empty")

const shardCount = 16

type shard struct {
	mu      sync.RWMutex
	signals map[string]*flare.Signal
}

type Hub struct {
	pool    *flare.Pool
	onError flare.ErrorFunc
	shards  [shardCount]shard
}

// Option customizes a Hub at construction.
type Option func(*Hub)

// WithErrorFunc installs the error sink handed to every signal the hub
// creates.
func WithErrorFunc(fn flare.ErrorFunc) Option {
	return func(h *Hub) {
		h.onError = fn
	}
}

func New(opts ...Option) *Hub {
	h := &Hub{pool: flare.NewPool()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Hub) shard(name string) *shard {
	return &h.shards[xxhash.Sum64String(name)%shardCount]
}

// Signal returns the signal registered under name, creating it if needed.
func (h *Hub) Signal(name string) (*flare.Signal, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	sh := h.shard(name)

	sh.mu.RLock()
	s := sh.signals[name]
	sh.mu.RUnlock()
	if s != nil {
		return s, nil
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if s = sh.signals[name]; s != nil {
		return s, nil
	}
	opts := []flare.Option{flare.WithPool(h.pool)}
	if h.onError != nil {
		opts = append(opts, flare.WithErrorFunc(h.onError))
	}
	s = flare.New(opts...)
	if sh.signals == nil {
		sh.signals = make(map[string]*flare.Signal)
	}
	sh.signals[name] = s
	return s, nil
}

// MustSignal works like Signal, but panics if the name is invalid.
func (h *Hub) MustSignal(name string) *flare.Signal {
	s, err := h.Signal(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Connect registers fn on the named signal.
func (h *Hub) Connect(name string, fn flare.Handler, bound ...any) (*flare.Connection, error) {
	s, err := h.Signal(name)
	if err != nil {
		return nil, err
	}
	return s.Connect(fn, bound...), nil
}

// Once registers fn on the named signal for a single delivery.
func (h *Hub) Once(name string, fn flare.Handler, bound ...any) (*flare.Connection, error) {
	s, err := h.Signal(name)
	if err != nil {
		return nil, err
	}
	return s.Once(fn, bound...), nil
}

// Fire dispatches args to the named signal's handlers. Firing a name nothing
// has connected to is a no-op; it does not create the signal.
func (h *Hub) Fire(name string, args ...any) {
	if name == "" {
		return
	}
	sh := h.shard(name)
	sh.mu.RLock()
	s := sh.signals[name]
	sh.mu.RUnlock()
	if s != nil {
		s.Fire(args...)
	}
}

// Remove disconnects everything registered under name and forgets the
// signal. A later Signal call with the same name starts fresh.
func (h *Hub) Remove(name string) {
	sh := h.shard(name)
	sh.mu.Lock()
	s := sh.signals[name]
	delete(sh.signals, name)
	sh.mu.Unlock()
	if s != nil {
		s.DisconnectAll()
	}
}

// Names returns the names of every signal the hub currently holds.
func (h *Hub) Names() []string {
	var names []string
	for i := range h.shards {
		sh := &h.shards[i]
		sh.mu.RLock()
		for name := range sh.signals {
			names = append(names, name)
		}
		sh.mu.RUnlock()
	}
	return names
}
