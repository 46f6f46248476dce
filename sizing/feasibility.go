package sizing

// Limits is the pair of supply ceilings a configuration must respect.
type Limits struct {
	Voltage float64 // V
	Current float64 // A
}

// Limits returns the ceilings carried by o.
func (o Options) Limits() Limits {
	return Limits{Voltage: o.VoltageCeiling, Current: o.CurrentCeiling}
}

// Admits reports whether ev stays within both ceilings.
func (l Limits) Admits(ev Evaluation) bool { return l.classify(ev) == Accepted }

// classify returns the filter verdict for ev. Voltage is checked first.
func (l Limits) classify(ev Evaluation) Verdict {
	if !(ev.MaxVoltage <= l.Voltage) {
		return RejectedVoltage
	}
	if !(ev.MaxCurrent <= l.Current) {
		return RejectedCurrent
	}

	return Accepted
}

// IsFeasible reports whether ev stays within both ceilings. Both bounds are
// inclusive: a MaxVoltage exactly equal to voltageCeiling is feasible.
func IsFeasible(ev Evaluation, voltageCeiling, currentCeiling float64) bool {
	return Limits{Voltage: voltageCeiling, Current: currentCeiling}.Admits(ev)
}
