package flare

// Option customizes a Signal at construction.
type Option func(*Signal)

// WithPool makes the signal draw runner contexts from a shared pool instead
// of owning its own.
func WithPool(p *Pool) Option {
	return func(s *Signal) {
		s.pool = p
	}
}

// WithErrorFunc installs the sink that receives handler and resume failures.
// The default sink writes to the standard logger.
func WithErrorFunc(fn ErrorFunc) Option {
	return func(s *Signal) {
		s.onError = fn
	}
}
