package reflection

// Option configures a Reflector
type Option func(*Reflector)

// WithStrategy sets the strategy used to name declarations
func WithStrategy(strategy Strategy) Option {
	return func(r *Reflector) {
		if strategy != nil {
			r.strategy = strategy
		}
	}
}
