// Package bridge adapts foreign event sources into signal fires. A Bridge
// subscribes to any number of sources, re-firing each callback into one
// signal, and unsubscribes from all of them when closed.
package bridge

import (
	"errors"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/brightparty/signals/flare"
)

var ErrClosed = errors.New("bridge is closed")

// Source is the host-side event producer. The bridge treats it as opaque: it
// only ever calls Subscribe and Unsubscribe with the token it was given.
type Source interface {
	Subscribe(cb func(args ...any)) uint64
	Unsubscribe(token uint64)
}

type subscription struct {
	src   Source
	token uint64
}

type Bridge struct {
	mu     sync.Mutex
	sig    *flare.Signal
	subs   mapset.Set[subscription]
	closed bool
}

func New(sig *flare.Signal) *Bridge {
	return &Bridge{
		sig:  sig,
		subs: mapset.NewSet[subscription](),
	}
}

// Signal returns the signal the bridge fires into.
func (b *Bridge) Signal() *flare.Signal {
	return b.sig
}

// Attach subscribes to src and re-fires its callbacks into the signal.
func (b *Bridge) Attach(src Source) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	token := src.Subscribe(b.sig.Fire)
	b.subs.Add(subscription{src: src, token: token})
	return nil
}

// Detach drops every subscription the bridge holds against src.
func (b *Bridge) Detach(src Source) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs.ToSlice() {
		if sub.src == src {
			b.subs.Remove(sub)
			sub.src.Unsubscribe(sub.token)
		}
	}
}

// Close unsubscribes from every attached source. The signal and its
// connections are left alone; only the inbound plumbing is torn down.
func (b *Bridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.subs.Each(func(sub subscription) bool {
		sub.src.Unsubscribe(sub.token)
		return false
	})
	b.subs.Clear()
}
