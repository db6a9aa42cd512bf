package flare

import (
	"sync"
	"sync/atomic"
)

type outcome uint8

const (
	outcomeCompleted outcome = iota
	outcomeSuspended
)

type job struct {
	conn *Connection
	args []any
}

// runner is a reusable execution context: a goroutine that repeatedly accepts
// (connection, argv) jobs. Synchronous handlers complete the handshake before
// resume returns; detached handlers release the handshake first and keep the
// runner busy until the handler body finishes.
type runner struct {
	pool    *Pool
	jobs    chan job
	outcome chan outcome
}

func newRunner(p *Pool) *runner {
	r := &runner{
		pool:    p,
		jobs:    make(chan job),
		outcome: make(chan outcome, 1),
	}
	go r.loop()
	return r
}

func (r *runner) loop() {
	for jb := range r.jobs {
		if r.invoke(jb) {
			continue
		}
		// A detached handler just finished on this runner's own time;
		// offer the runner back, or retire it if the slot is taken.
		if !r.pool.put(r) {
			return
		}
	}
}

// invoke runs the job's handler and reports the handshake. The return value
// is true when the runner still owes itself a completed handshake (the
// synchronous case handled by loop).
func (r *runner) invoke(jb job) (sync bool) {
	args := jb.args
	if jb.conn.detached {
		// The dispatcher reuses argv as soon as resume returns, so a
		// detached handler gets a private copy.
		args = append([]any(nil), args...)
		r.outcome <- outcomeSuspended
	} else {
		defer func() { r.outcome <- outcomeCompleted }()
		sync = true
	}
	defer func() {
		if v := recover(); v != nil {
			jb.conn.signal.reportError(jb.conn, &HandlerError{value: v})
		}
	}()
	jb.conn.fn(args...)
	return sync
}

// resume hands a job to the runner and blocks until it either completes or
// suspends. Resuming a retired runner yields a *ResumeError.
func (r *runner) resume(jb job) (out outcome, err error) {
	defer func() {
		if v := recover(); v != nil {
			out, err = outcomeCompleted, &ResumeError{value: v}
		}
	}()
	r.jobs <- jb
	return <-r.outcome, nil
}

func (r *runner) stop() {
	close(r.jobs)
}

// Pool recycles runner contexts. It keeps a single free slot: a Fire pass
// whose handlers all complete synchronously reuses one runner for the whole
// pass, while each suspended handler strands its runner until the handler
// body returns.
//
// New gives every Signal its own Pool; WithPool shares one across signals.
type Pool struct {
	mu      sync.Mutex
	free    *runner
	created atomic.Int64
}

func NewPool() *Pool {
	return &Pool{}
}

func (p *Pool) get() *runner {
	p.mu.Lock()
	r := p.free
	p.free = nil
	p.mu.Unlock()
	if r == nil {
		r = p.fresh()
	}
	return r
}

func (p *Pool) fresh() *runner {
	p.created.Add(1)
	return newRunner(p)
}

func (p *Pool) put(r *runner) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.free != nil {
		return false
	}
	p.free = r
	return true
}

// Created reports how many runner contexts the pool has ever built.
func (p *Pool) Created() int {
	return int(p.created.Load())
}
