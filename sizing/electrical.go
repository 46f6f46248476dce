package sizing

import (
	"fmt"
	"math"

	"github.com/katalvlaran/htrsize/catalog"
	"github.com/katalvlaran/htrsize/topology"
)

// Evaluate computes the electrical characteristics of heater h, cut to
// length feet and wired as t, dissipating watts.
//
//	R    = t.Resistance(h.OhmsPerFoot × length)
//	Imax = sqrt(watts / R)
//	Vmax = sqrt(watts × R)
//
// so Imax × Vmax == watts for every admissible R.
//
// Errors:
//   - ErrInvalidInput : length <= 0, watts <= 0, unknown topology
//   - ErrDegenerateGeometry : R is zero, negative or non-finite
//
// Pure; O(1).
func Evaluate(h catalog.HeaterModel, length float64, t topology.Topology, watts float64) (Evaluation, error) {
	if !positiveFinite(length) {
		return Evaluation{}, fmt.Errorf("%w: length must be > 0, got %g", ErrInvalidInput, length)
	}
	if !positiveFinite(watts) {
		return Evaluation{}, fmt.Errorf("%w: target watts must be > 0, got %g", ErrInvalidInput, watts)
	}
	if !t.Valid() {
		return Evaluation{}, fmt.Errorf("%w: unknown topology %d", ErrInvalidInput, uint8(t))
	}

	ev := Evaluation{Heater: h, Length: length, Topology: t}
	ev.Resistance = t.Resistance(h.OhmsPerFoot * length)
	if !positiveFinite(ev.Resistance) {
		return ev, fmt.Errorf("%w: %s %s at %g ft gives %g ohm",
			ErrDegenerateGeometry, h.Code, t, length, ev.Resistance)
	}
	ev.MaxCurrent = math.Sqrt(watts / ev.Resistance)
	ev.MaxVoltage = math.Sqrt(watts * ev.Resistance)

	return ev, nil
}
