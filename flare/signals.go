package flare

import (
	"context"
	"sync"

	"github.com/eapache/queue"
)

// Handler is invoked with the connection's bound arguments (if any)
// followed by the arguments passed to Fire.
type Handler func(args ...any)

// Signal is the registry and dispatcher for one event channel. Handlers are
// registered with Connect and friends, and every Fire delivers its arguments
// to each connected handler, most recently connected first.
//
// Connect, Disconnect, Reconnect and DisconnectAll are safe to call from any
// goroutine, including from inside a handler while a Fire pass is in flight.
// Fire calls on one signal must not overlap each other; the scratch buffer
// used for bound-argument prepending is per connection, not per pass.
type Signal struct {
	mu       sync.Mutex
	head     *Connection
	pool     *Pool
	onError  ErrorFunc
	deferred *queue.Queue
}

func New(opts ...Option) *Signal {
	s := &Signal{}
	for _, opt := range opts {
		opt(s)
	}
	if s.pool == nil {
		s.pool = NewPool()
	}
	if s.onError == nil {
		s.onError = logError
	}
	return s
}

// Connect registers fn at the head of the delivery list, so the most recently
// connected handler runs first on the next Fire. Any bound arguments are
// prepended ahead of the fired arguments on every delivery.
func (s *Signal) Connect(fn Handler, bound ...any) *Connection {
	return s.connect(fn, bound, false, false)
}

// ConnectDetached registers fn like Connect, but each delivery releases the
// dispatcher before the handler body runs: the handler may block without
// stalling the Fire pass, and runs on its own runner context. The argument
// slice handed to a detached handler is a private copy.
func (s *Signal) ConnectDetached(fn Handler, bound ...any) *Connection {
	return s.connect(fn, bound, false, true)
}

// Once registers fn for a single delivery; the connection disconnects itself
// before the handler runs. Reconnecting the returned connection re-arms it
// for exactly one more delivery.
func (s *Signal) Once(fn Handler, bound ...any) *Connection {
	return s.connect(fn, bound, true, false)
}

// OnceDetached combines Once and ConnectDetached.
func (s *Signal) OnceDetached(fn Handler, bound ...any) *Connection {
	return s.connect(fn, bound, true, true)
}

func (s *Signal) connect(fn Handler, bound []any, once, detached bool) *Connection {
	c := &Connection{
		signal:   s,
		detached: detached,
		boundLen: len(bound),
	}
	if len(bound) > 0 {
		c.argv = append(make([]any, 0, len(bound)), bound...)
	}
	if once {
		inner := fn
		fn = func(args ...any) {
			c.Disconnect()
			inner(args...)
		}
	}
	c.fn = fn

	s.mu.Lock()
	c.connected = true
	c.next = s.head
	if s.head != nil {
		s.head.prev = c
	}
	s.head = c
	s.mu.Unlock()
	return c
}

// Fire delivers args to every connected handler, walking the list head to
// tail. Connections made during the pass land at the head and are not
// visited; a connection disconnected mid-pass keeps its forward link, so a
// pass parked on it still advances to its old successor.
//
// Fire never fails: handler panics are routed to the signal's error sink and
// dispatch continues with the remaining connections.
func (s *Signal) Fire(args ...any) {
	s.mu.Lock()
	c := s.head
	s.mu.Unlock()

	for c != nil {
		if c.Connected() {
			s.dispatch(c, args)
		}
		s.mu.Lock()
		next := c.next
		s.mu.Unlock()
		c = next
	}
}

func (s *Signal) dispatch(c *Connection, fired []any) {
	argv := fired
	if c.boundLen > 0 {
		c.argv = append(c.argv[:c.boundLen], fired...)
		argv = c.argv
	}

	jb := job{conn: c, args: argv}
	r := s.pool.get()
	out, err := r.resume(jb)
	if err != nil {
		s.reportError(c, err)
		r = s.pool.fresh()
		out, err = r.resume(jb)
	}
	if err == nil && out == outcomeCompleted {
		if !s.pool.put(r) {
			r.stop()
		}
	}

	if c.boundLen > 0 {
		// Drop fired-argument references so the scratch buffer does not
		// keep them alive between passes.
		clear(c.argv[c.boundLen:])
		c.argv = c.argv[:c.boundLen]
	}
}

// FireDeferred queues args for a later Flush instead of dispatching now.
func (s *Signal) FireDeferred(args ...any) {
	s.mu.Lock()
	if s.deferred == nil {
		s.deferred = queue.New()
	}
	s.deferred.Add(append([]any(nil), args...))
	s.mu.Unlock()
}

// Flush dispatches every queued deferred fire in FIFO order, with full Fire
// semantics for each. Fires deferred while flushing are drained too.
func (s *Signal) Flush() {
	for {
		s.mu.Lock()
		if s.deferred == nil || s.deferred.Length() == 0 {
			s.mu.Unlock()
			return
		}
		args := s.deferred.Remove().([]any)
		s.mu.Unlock()
		s.Fire(args...)
	}
}

// Wait blocks until the next Fire and returns that fire's arguments.
func (s *Signal) Wait() []any {
	args, _ := s.WaitContext(context.Background())
	return args
}

// WaitContext is Wait with external cancellation. On cancellation the hidden
// one-shot connection is disconnected and the context error is returned.
func (s *Signal) WaitContext(ctx context.Context) ([]any, error) {
	ch := make(chan []any, 1)
	c := s.Once(func(args ...any) {
		ch <- append([]any(nil), args...)
	})
	select {
	case args := <-ch:
		return args, nil
	case <-ctx.Done():
		c.Disconnect()
		return nil, ctx.Err()
	}
}

// Pool returns the runner pool the signal dispatches through.
func (s *Signal) Pool() *Pool {
	return s.pool
}

// DisconnectAll disconnects every connection in the list. Handles already
// handed out keep working: they report Connected false and may Reconnect.
func (s *Signal) DisconnectAll() {
	s.mu.Lock()
	for c := s.head; c != nil; c = c.next {
		c.connected = false
	}
	s.head = nil
	s.mu.Unlock()
}

func (s *Signal) reportError(c *Connection, err error) {
	if s.onError != nil {
		s.onError(c, err)
	}
}
