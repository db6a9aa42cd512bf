package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightparty/signals/bridge"
	"github.com/brightparty/signals/flare"
)

// fakeSource is a minimal host event producer for the adapter tests.
type fakeSource struct {
	nextToken uint64
	callbacks map[uint64]func(args ...any)
}

func newFakeSource() *fakeSource {
	return &fakeSource{callbacks: map[uint64]func(args ...any){}}
}

func (f *fakeSource) Subscribe(cb func(args ...any)) uint64 {
	f.nextToken++
	f.callbacks[f.nextToken] = cb
	return f.nextToken
}

func (f *fakeSource) Unsubscribe(token uint64) {
	delete(f.callbacks, token)
}

func (f *fakeSource) emit(args ...any) {
	for _, cb := range f.callbacks {
		cb(args...)
	}
}

func TestAttachRefiresSourceEvents(t *testing.T) {
	sig := flare.New()
	var got []any
	sig.Connect(func(args ...any) {
		got = append(got, args...)
	})

	src := newFakeSource()
	b := bridge.New(sig)
	require.NoError(t, b.Attach(src))

	src.emit("payload", 1)
	assert.Equal(t, []any{"payload", 1}, got)
	assert.Same(t, sig, b.Signal())
}

func TestDetachStopsOneSource(t *testing.T) {
	sig := flare.New()
	count := 0
	sig.Connect(func(args ...any) {
		count++
	})

	kept := newFakeSource()
	dropped := newFakeSource()
	b := bridge.New(sig)
	require.NoError(t, b.Attach(kept))
	require.NoError(t, b.Attach(dropped))

	b.Detach(dropped)
	assert.Empty(t, dropped.callbacks)

	kept.emit()
	dropped.emit()
	assert.Equal(t, 1, count)
}

func TestCloseUnsubscribesEverything(t *testing.T) {
	sig := flare.New()
	count := 0
	sig.Connect(func(args ...any) {
		count++
	})

	a := newFakeSource()
	c := newFakeSource()
	b := bridge.New(sig)
	require.NoError(t, b.Attach(a))
	require.NoError(t, b.Attach(c))

	b.Close()
	assert.Empty(t, a.callbacks)
	assert.Empty(t, c.callbacks)

	a.emit()
	c.emit()
	assert.Equal(t, 0, count)

	// Closing twice is fine; attaching after close is not.
	b.Close()
	assert.ErrorIs(t, b.Attach(a), bridge.ErrClosed)
}
