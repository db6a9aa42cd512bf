package flare_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightparty/signals/flare"
)

func record(got *[]string) flare.Handler {
	return func(args ...any) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = fmt.Sprint(a)
		}
		line := ""
		for i, p := range parts {
			if i > 0 {
				line += " "
			}
			line += p
		}
		*got = append(*got, line)
	}
}

func TestFireOrderIsLastConnectedFirst(t *testing.T) {
	s := flare.New()
	var got []string
	s.Connect(record(&got), "first")
	s.Connect(record(&got), "second")
	s.Connect(record(&got), "third")

	s.Fire()
	assert.Equal(t, []string{"third", "second", "first"}, got)
}

// from the README scenario: bound args prepend fired args, newest
// connection fires first, disconnect and reconnect behave per handle.
func TestConnectFireDisconnectReconnect(t *testing.T) {
	s := flare.New()
	var got []string
	c1 := s.Connect(record(&got), "A")
	c2 := s.Connect(record(&got), "B")

	s.Fire("X")
	assert.Equal(t, []string{"B X", "A X"}, got)

	got = nil
	c1.Disconnect()
	s.Fire("Y")
	assert.Equal(t, []string{"B Y"}, got)

	got = nil
	c1.Reconnect()
	s.Fire("Z")
	assert.Equal(t, []string{"A Z", "B Z"}, got)

	assert.True(t, c1.Connected())
	assert.True(t, c2.Connected())
}

func TestDisconnectIsIdempotent(t *testing.T) {
	s := flare.New()
	var got []string
	c := s.Connect(record(&got))
	c.Disconnect()
	c.Disconnect()
	assert.False(t, c.Connected())

	c.Reconnect()
	c.Reconnect()
	assert.True(t, c.Connected())

	s.Fire("x")
	assert.Equal(t, []string{"x"}, got)
}

func TestBoundArgsDoNotAccumulate(t *testing.T) {
	s := flare.New()
	var got []string
	s.Connect(record(&got), "a")

	s.Fire("b")
	s.Fire("c")
	s.Fire()
	assert.Equal(t, []string{"a b", "a c", "a"}, got)
}

func TestSelfDisconnectMidPassStillAdvances(t *testing.T) {
	s := flare.New()
	var got []string
	s.Connect(record(&got), "tail")
	var c2 *flare.Connection
	c2 = s.Connect(func(args ...any) {
		c2.Disconnect()
		got = append(got, "middle")
	})
	s.Connect(record(&got), "head")

	s.Fire()
	assert.Equal(t, []string{"head", "middle", "tail"}, got)
	assert.False(t, c2.Connected())

	got = nil
	s.Fire()
	assert.Equal(t, []string{"head", "tail"}, got)
}

func TestDisconnectUnvisitedNodeDuringPass(t *testing.T) {
	s := flare.New()
	var got []string
	victim := s.Connect(record(&got), "victim")
	s.Connect(func(args ...any) {
		victim.Disconnect()
		got = append(got, "assassin")
	})

	s.Fire()
	assert.Equal(t, []string{"assassin"}, got)
}

func TestConnectDuringPassIsNotVisited(t *testing.T) {
	s := flare.New()
	var got []string
	s.Connect(func(args ...any) {
		s.Connect(record(&got), "late")
		got = append(got, "early")
	})

	s.Fire()
	assert.Equal(t, []string{"early"}, got)

	got = nil
	s.Fire()
	assert.Equal(t, []string{"late", "early"}, got)
}

func TestOnceFiresExactlyOnce(t *testing.T) {
	s := flare.New()
	var got []string
	c := s.Once(record(&got), "once")

	s.Fire("1")
	s.Fire("2")
	assert.Equal(t, []string{"once 1"}, got)
	assert.False(t, c.Connected())
}

func TestOnceReconnectRearmsSingleDelivery(t *testing.T) {
	s := flare.New()
	count := 0
	c := s.Once(func(args ...any) {
		count++
	})

	s.Fire()
	s.Fire()
	assert.Equal(t, 1, count)

	c.Reconnect()
	assert.True(t, c.Connected())
	s.Fire()
	s.Fire()
	assert.Equal(t, 2, count)
	assert.False(t, c.Connected())
}

func TestDisconnectAll(t *testing.T) {
	s := flare.New()
	count := 0
	handles := make([]*flare.Connection, 5)
	for i := range handles {
		handles[i] = s.Connect(func(args ...any) {
			count++
		})
	}

	s.DisconnectAll()
	s.Fire()
	assert.Equal(t, 0, count)
	for _, c := range handles {
		assert.False(t, c.Connected())
	}

	handles[2].Reconnect()
	s.Fire()
	assert.Equal(t, 1, count)
}

func TestWaitReturnsNextFireArgs(t *testing.T) {
	s := flare.New()
	go func() {
		time.Sleep(10 * time.Millisecond)
		s.Fire("hello", 42)
	}()

	args := s.Wait()
	require.Len(t, args, 2)
	assert.Equal(t, "hello", args[0])
	assert.Equal(t, 42, args[1])
}

func TestWaitContextCancel(t *testing.T) {
	s := flare.New()
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	args, err := s.WaitContext(ctx)
	assert.Nil(t, args)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSyncHandlersShareOneRunnerContext(t *testing.T) {
	s := flare.New()
	for i := 0; i < 50; i++ {
		s.Connect(func(args ...any) {})
	}

	for i := 0; i < 10; i++ {
		s.Fire(i)
	}
	assert.Equal(t, 1, s.Pool().Created())
}

func TestDetachedHandlersEachGetARunnerContext(t *testing.T) {
	const n = 8

	s := flare.New()
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		s.ConnectDetached(func(args ...any) {
			defer wg.Done()
			<-release
		})
	}

	s.Fire()
	assert.Equal(t, n, s.Pool().Created())

	close(release)
	wg.Wait()
}

func TestDetachedRunnerIsRecycledAfterCompletion(t *testing.T) {
	s := flare.New()
	done := make(chan struct{})
	c := s.ConnectDetached(func(args ...any) {
		close(done)
	})

	s.Fire()
	<-done
	c.Disconnect()

	// Give the runner a beat to re-offer itself, then confirm sync
	// dispatch reuses it instead of building a second context.
	time.Sleep(10 * time.Millisecond)
	s.Connect(func(args ...any) {})
	s.Fire()
	assert.Equal(t, 1, s.Pool().Created())
}

func TestDetachedHandlerDoesNotBlockFire(t *testing.T) {
	s := flare.New()
	release := make(chan struct{})
	var got []string
	s.Connect(record(&got), "sync")
	s.ConnectDetached(func(args ...any) {
		<-release
	})

	fired := make(chan struct{})
	go func() {
		s.Fire("x")
		close(fired)
	}()

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("Fire blocked on a detached handler")
	}
	assert.Equal(t, []string{"sync x"}, got)
	close(release)
}

func TestDetachedHandlerSeesBoundAndFiredArgs(t *testing.T) {
	s := flare.New()
	argsCh := make(chan []any, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	s.ConnectDetached(func(args ...any) {
		defer wg.Done()
		argsCh <- append([]any(nil), args...)
	}, "bound")

	s.Fire("fired")
	wg.Wait()
	assert.Equal(t, []any{"bound", "fired"}, <-argsCh)
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	var mu sync.Mutex
	var sunk []error
	s := flare.New(flare.WithErrorFunc(func(from *flare.Connection, err error) {
		mu.Lock()
		sunk = append(sunk, err)
		mu.Unlock()
	}))

	var got []string
	s.Connect(record(&got), "survivor")
	s.Connect(func(args ...any) {
		panic("boom")
	})

	s.Fire("x")
	assert.Equal(t, []string{"survivor x"}, got)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, sunk, 1)
	var herr *flare.HandlerError
	require.ErrorAs(t, sunk[0], &herr)
	assert.Equal(t, "boom", herr.Value())
}

func TestSharedPoolAcrossSignals(t *testing.T) {
	pool := flare.NewPool()
	a := flare.New(flare.WithPool(pool))
	b := flare.New(flare.WithPool(pool))
	a.Connect(func(args ...any) {})
	b.Connect(func(args ...any) {})

	a.Fire()
	b.Fire()
	assert.Equal(t, 1, pool.Created())
}

func TestFireDeferredFlush(t *testing.T) {
	s := flare.New()
	var got []string
	s.Connect(record(&got))

	s.FireDeferred("1")
	s.FireDeferred("2")
	assert.Empty(t, got)

	s.Flush()
	assert.Equal(t, []string{"1", "2"}, got)

	s.Flush()
	assert.Equal(t, []string{"1", "2"}, got)
}

func TestFireFromInsideHandler(t *testing.T) {
	s := flare.New()
	inner := flare.New()
	var got []string
	inner.Connect(record(&got), "inner")
	s.Connect(func(args ...any) {
		inner.Fire(args[0])
		got = append(got, "outer")
	})

	s.Fire("x")
	assert.Equal(t, []string{"inner x", "outer"}, got)
}
