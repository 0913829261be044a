package circuit

// Option configures a ConstraintSystem at construction time. Mirrors the
// teacher's functional-options idiom (frontend.CompileOption /
// frontend.WithCapacity in gnark's Compile()).
type Option func(*csConfig)

type csConfig struct {
	capacityHint int
	debugLogging bool
}

// WithCapacityHint pre-allocates room for the expected number of
// constraints, avoiding slice growth churn on large circuits.
func WithCapacityHint(n int) Option {
	return func(c *csConfig) { c.capacityHint = n }
}

// WithDebugLogging turns on debug-level logging of every Enforce call
// (scope label, constraint index). The events go to the "circuit"
// component logger, which starts at info level, so they are written only
// once that level is lowered to debug (obs.SetLevel). It never changes
// IsSatisfied semantics.
func WithDebugLogging(enabled bool) Option {
	return func(c *csConfig) { c.debugLogging = enabled }
}
