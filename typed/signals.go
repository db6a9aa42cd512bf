package typed

import (
	"context"

	"github.com/brightparty/signals/flare"
)

type Signal1[T0 any] struct {
	s *flare.Signal
}

func New1[T0 any](opts ...flare.Option) *Signal1[T0] {
	return &Signal1[T0]{s: flare.New(opts...)}
}

func (ts *Signal1[T0]) Raw() *flare.Signal {
	return ts.s
}

func (ts *Signal1[T0]) Connect(fn func(T0)) *flare.Connection {
	return ts.s.Connect(func(args ...any) {
		fn(args[0].(T0))
	})
}

func (ts *Signal1[T0]) ConnectDetached(fn func(T0)) *flare.Connection {
	return ts.s.ConnectDetached(func(args ...any) {
		fn(args[0].(T0))
	})
}

func (ts *Signal1[T0]) Once(fn func(T0)) *flare.Connection {
	return ts.s.Once(func(args ...any) {
		fn(args[0].(T0))
	})
}

func (ts *Signal1[T0]) Fire(v0 T0) {
	ts.s.Fire(v0)
}

func (ts *Signal1[T0]) FireDeferred(v0 T0) {
	ts.s.FireDeferred(v0)
}

func (ts *Signal1[T0]) Flush() {
	ts.s.Flush()
}

func (ts *Signal1[T0]) Wait() T0 {
	args := ts.s.Wait()
	return args[0].(T0)
}

func (ts *Signal1[T0]) WaitContext(ctx context.Context) (T0, error) {
	args, err := ts.s.WaitContext(ctx)
	if err != nil {
		var zero0 T0
		return zero0, err
	}
	return args[0].(T0), nil
}

func (ts *Signal1[T0]) DisconnectAll() {
	ts.s.DisconnectAll()
}

type Signal2[T0, T1 any] struct {
	s *flare.Signal
}

func New2[T0, T1 any](opts ...flare.Option) *Signal2[T0, T1] {
	return &Signal2[T0, T1]{s: flare.New(opts...)}
}

func (ts *Signal2[T0, T1]) Raw() *flare.Signal {
	return ts.s
}

func (ts *Signal2[T0, T1]) Connect(fn func(T0, T1)) *flare.Connection {
	return ts.s.Connect(func(args ...any) {
		fn(args[0].(T0), args[1].(T1))
	})
}

func (ts *Signal2[T0, T1]) ConnectDetached(fn func(T0, T1)) *flare.Connection {
	return ts.s.ConnectDetached(func(args ...any) {
		fn(args[0].(T0), args[1].(T1))
	})
}

func (ts *Signal2[T0, T1]) Once(fn func(T0, T1)) *flare.Connection {
	return ts.s.Once(func(args ...any) {
		fn(args[0].(T0), args[1].(T1))
	})
}

func (ts *Signal2[T0, T1]) Fire(v0 T0, v1 T1) {
	ts.s.Fire(v0, v1)
}

func (ts *Signal2[T0, T1]) FireDeferred(v0 T0, v1 T1) {
	ts.s.FireDeferred(v0, v1)
}

func (ts *Signal2[T0, T1]) Flush() {
	ts.s.Flush()
}

func (ts *Signal2[T0, T1]) Wait() (T0, T1) {
	args := ts.s.Wait()
	return args[0].(T0), args[1].(T1)
}

func (ts *Signal2[T0, T1]) WaitContext(ctx context.Context) (T0, T1, error) {
	args, err := ts.s.WaitContext(ctx)
	if err != nil {
		var zero0 T0
		var zero1 T1
		return zero0, zero1, err
	}
	return args[0].(T0), args[1].(T1), nil
}

func (ts *Signal2[T0, T1]) DisconnectAll() {
	ts.s.DisconnectAll()
}

type Signal3[T0, T1, T2 any] struct {
	s *flare.Signal
}

func New3[T0, T1, T2 any](opts ...flare.Option) *Signal3[T0, T1, T2] {
	return &Signal3[T0, T1, T2]{s: flare.New(opts...)}
}

func (ts *Signal3[T0, T1, T2]) Raw() *flare.Signal {
	return ts.s
}

func (ts *Signal3[T0, T1, T2]) Connect(fn func(T0, T1, T2)) *flare.Connection {
	return ts.s.Connect(func(args ...any) {
		fn(args[0].(T0), args[1].(T1), args[2].(T2))
	})
}

func (ts *Signal3[T0, T1, T2]) ConnectDetached(fn func(T0, T1, T2)) *flare.Connection {
	return ts.s.ConnectDetached(func(args ...any) {
		fn(args[0].(T0), args[1].(T1), args[2].(T2))
	})
}

func (ts *Signal3[T0, T1, T2]) Once(fn func(T0, T1, T2)) *flare.Connection {
	return ts.s.Once(func(args ...any) {
		fn(args[0].(T0), args[1].(T1), args[2].(T2))
	})
}

func (ts *Signal3[T0, T1, T2]) Fire(v0 T0, v1 T1, v2 T2) {
	ts.s.Fire(v0, v1, v2)
}

func (ts *Signal3[T0, T1, T2]) FireDeferred(v0 T0, v1 T1, v2 T2) {
	ts.s.FireDeferred(v0, v1, v2)
}

func (ts *Signal3[T0, T1, T2]) Flush() {
	ts.s.Flush()
}

func (ts *Signal3[T0, T1, T2]) Wait() (T0, T1, T2) {
	args := ts.s.Wait()
	return args[0].(T0), args[1].(T1), args[2].(T2)
}

func (ts *Signal3[T0, T1, T2]) WaitContext(ctx context.Context) (T0, T1, T2, error) {
	args, err := ts.s.WaitContext(ctx)
	if err != nil {
		var zero0 T0
		var zero1 T1
		var zero2 T2
		return zero0, zero1, zero2, err
	}
	return args[0].(T0), args[1].(T1), args[2].(T2), nil
}

func (ts *Signal3[T0, T1, T2]) DisconnectAll() {
	ts.s.DisconnectAll()
}

type Signal4[T0, T1, T2, T3 any] struct {
	s *flare.Signal
}

func New4[T0, T1, T2, T3 any](opts ...flare.Option) *Signal4[T0, T1, T2, T3] {
	return &Signal4[T0, T1, T2, T3]{s: flare.New(opts...)}
}

func (ts *Signal4[T0, T1, T2, T3]) Raw() *flare.Signal {
	return ts.s
}

func (ts *Signal4[T0, T1, T2, T3]) Connect(fn func(T0, T1, T2, T3)) *flare.Connection {
	return ts.s.Connect(func(args ...any) {
		fn(args[0].(T0), args[1].(T1), args[2].(T2), args[3].(T3))
	})
}

func (ts *Signal4[T0, T1, T2, T3]) ConnectDetached(fn func(T0, T1, T2, T3)) *flare.Connection {
	return ts.s.ConnectDetached(func(args ...any) {
		fn(args[0].(T0), args[1].(T1), args[2].(T2), args[3].(T3))
	})
}

func (ts *Signal4[T0, T1, T2, T3]) Once(fn func(T0, T1, T2, T3)) *flare.Connection {
	return ts.s.Once(func(args ...any) {
		fn(args[0].(T0), args[1].(T1), args[2].(T2), args[3].(T3))
	})
}

func (ts *Signal4[T0, T1, T2, T3]) Fire(v0 T0, v1 T1, v2 T2, v3 T3) {
	ts.s.Fire(v0, v1, v2, v3)
}

func (ts *Signal4[T0, T1, T2, T3]) FireDeferred(v0 T0, v1 T1, v2 T2, v3 T3) {
	ts.s.FireDeferred(v0, v1, v2, v3)
}

func (ts *Signal4[T0, T1, T2, T3]) Flush() {
	ts.s.Flush()
}

func (ts *Signal4[T0, T1, T2, T3]) Wait() (T0, T1, T2, T3) {
	args := ts.s.Wait()
	return args[0].(T0), args[1].(T1), args[2].(T2), args[3].(T3)
}

func (ts *Signal4[T0, T1, T2, T3]) WaitContext(ctx context.Context) (T0, T1, T2, T3, error) {
	args, err := ts.s.WaitContext(ctx)
	if err != nil {
		var zero0 T0
		var zero1 T1
		var zero2 T2
		var zero3 T3
		return zero0, zero1, zero2, zero3, err
	}
	return args[0].(T0), args[1].(T1), args[2].(T2), args[3].(T3), nil
}

func (ts *Signal4[T0, T1, T2, T3]) DisconnectAll() {
	ts.s.DisconnectAll()
}
