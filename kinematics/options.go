package kinematics

// Options configures the angle calculator.
type Options struct {
	// RBoost selects the SL(2,C)-word method for alignment angles
	// between chains; when false the axis-matching method is used.
	RBoost bool

	// CenterOfMass boosts all input momenta into their common
	// center-of-mass frame before any angle is computed.
	CenterOfMass bool

	// ZFromTopMomentum aligns the base z axis with the top particle's
	// lab momentum when it is nonzero (|p| ≥ 1e-5); otherwise the fixed
	// lab ẑ is used throughout.
	ZFromTopMomentum bool

	// UsingTopology collapses the group's chains onto distinct
	// topologies before computing angles, so chains that differ only by
	// resonance content share one angle set.
	UsingTopology bool
}

// DefaultOptions returns the standard configuration: r-boost alignment,
// no center-of-mass boost, z axis from the top momentum, topology
// deduplication on.
func DefaultOptions() Options {
	return Options{
		RBoost:           true,
		CenterOfMass:     false,
		ZFromTopMomentum: true,
		UsingTopology:    true,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithRBoost toggles the SL(2,C)-word alignment method.
func WithRBoost(on bool) Option {
	return func(o *Options) { o.RBoost = on }
}

// WithCenterOfMass toggles the center-of-mass pre-boost.
func WithCenterOfMass(on bool) Option {
	return func(o *Options) { o.CenterOfMass = on }
}

// WithZFromTopMomentum toggles deriving the base z axis from the top
// particle's momentum.
func WithZFromTopMomentum(on bool) Option {
	return func(o *Options) { o.ZFromTopMomentum = on }
}

// WithTopology toggles topology deduplication across the group.
func WithTopology(on bool) Option {
	return func(o *Options) { o.UsingTopology = on }
}
