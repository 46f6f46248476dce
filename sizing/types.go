package sizing

import (
	"github.com/katalvlaran/htrsize/catalog"
	"github.com/katalvlaran/htrsize/topology"
)

// Candidate is a heater whose required length, under Condition, fell inside
// the requested tolerance window. Length is the required length in feet.
type Candidate struct {
	Heater    catalog.HeaterModel
	Length    float64
	Condition topology.Condition
}

// Evaluation is the electrical characterisation of one heater, length and
// topology at the target wattage.
//
// Fields:
//   - Resistance : effective resistance seen by the supply (ohm).
//   - MaxCurrent : supply current at the target wattage (A).
//   - MaxVoltage : supply voltage at the target wattage (V).
type Evaluation struct {
	Heater     catalog.HeaterModel
	Length     float64
	Topology   topology.Topology
	Resistance float64
	MaxCurrent float64
	MaxVoltage float64
}

// Verdict is the outcome of filtering one evaluated triple.
type Verdict uint8

const (
	// Accepted: within both ceilings.
	Accepted Verdict = iota

	// RejectedVoltage: MaxVoltage above the voltage ceiling.
	RejectedVoltage

	// RejectedCurrent: MaxCurrent above the current ceiling (voltage was fine).
	RejectedCurrent

	// RejectedDegenerate: the resistance was not a positive finite number.
	RejectedDegenerate
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case RejectedVoltage:
		return "rejected: voltage"
	case RejectedCurrent:
		return "rejected: current"
	case RejectedDegenerate:
		return "rejected: degenerate"
	default:
		return "unknown"
	}
}
