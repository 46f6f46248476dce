package sizing

import (
	"fmt"
	"math"
)

// Defaults for Options.
const (
	// DefaultTolerance is the accepted deviation (ft) between required and
	// requested length, applied on both sides.
	DefaultTolerance = 0.5

	// DefaultSafetyFactor divides each lead's power rating.
	DefaultSafetyFactor = 1.5

	// DefaultVoltageCeiling is the highest admissible supply voltage (V).
	DefaultVoltageCeiling = 60.0

	// DefaultCurrentCeiling is the highest admissible supply current (A).
	DefaultCurrentCeiling = 10.0
)

// Option configures a search via functional arguments.
// An invalid value (e.g. a negative tolerance) is recorded and surfaced as
// ErrInvalidInput when Search or Candidates is invoked.
type Option func(*Options)

// Options holds every knob of one search run. There is no package-level
// state; two runs with equal Options and inputs return equal results.
type Options struct {
	// Tolerance is the half-width (ft) of the accepted length window. >= 0.
	Tolerance float64

	// SafetyFactor divides MaxWattPerLead before sizing. > 0.
	SafetyFactor float64

	// VoltageCeiling is the inclusive upper bound on MaxVoltage. > 0.
	VoltageCeiling float64

	// CurrentCeiling is the inclusive upper bound on MaxCurrent. > 0.
	CurrentCeiling float64

	// OnCandidate, if set, observes every evaluated triple and its verdict
	// in discovery order. Observing never changes the result.
	OnCandidate func(ev Evaluation, v Verdict)

	// first invalid option value, if any
	err error
}

// DefaultOptions returns Options with the documented defaults and a no-op
// OnCandidate hook.
func DefaultOptions() Options {
	return Options{
		Tolerance:      DefaultTolerance,
		SafetyFactor:   DefaultSafetyFactor,
		VoltageCeiling: DefaultVoltageCeiling,
		CurrentCeiling: DefaultCurrentCeiling,
		OnCandidate:    func(Evaluation, Verdict) {},
	}
}

// WithTolerance sets the length tolerance.
//
//	t >= 0: accept required lengths in [requested-t, requested+t]
//	t < 0 or NaN: invalid → ErrInvalidInput
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if t < 0 || math.IsNaN(t) {
			o.fail("tolerance must be >= 0, got %g", t)

			return
		}
		o.Tolerance = t
	}
}

// WithSafetyFactor sets the divisor applied to each lead's rating. f must be > 0.
func WithSafetyFactor(f float64) Option {
	return func(o *Options) {
		if !positiveFinite(f) {
			o.fail("safety factor must be > 0, got %g", f)

			return
		}
		o.SafetyFactor = f
	}
}

// WithVoltageCeiling sets the inclusive voltage bound. v must be > 0.
func WithVoltageCeiling(v float64) Option {
	return func(o *Options) {
		if !positiveFinite(v) {
			o.fail("voltage ceiling must be > 0, got %g", v)

			return
		}
		o.VoltageCeiling = v
	}
}

// WithCurrentCeiling sets the inclusive current bound. c must be > 0.
func WithCurrentCeiling(c float64) Option {
	return func(o *Options) {
		if !positiveFinite(c) {
			o.fail("current ceiling must be > 0, got %g", c)

			return
		}
		o.CurrentCeiling = c
	}
}

// WithOnCandidate registers an observer for every evaluated triple.
// A nil fn keeps the current hook.
func WithOnCandidate(fn func(ev Evaluation, v Verdict)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}

// fail records the first option violation.
func (o *Options) fail(format string, args ...interface{}) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
	}
}

// resolveOptions applies opts over DefaultOptions and validates the result.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
