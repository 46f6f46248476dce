package topology

import "fmt"

// attrs holds the static attributes of one Topology.
type attrs struct {
	name      string
	leads     int
	branches  int
	condition Condition
	transform func(r float64) float64
}

// table is indexed by Topology. Enumeration order is the search order.
var table = [count]attrs{
	SeriesParallel:   {"Series-Parallel", 4, 2, Quarter, func(r float64) float64 { return r }},
	FourLeadSeries:   {"4-lead-Series", 4, 1, Quarter, func(r float64) float64 { return 4 * r }},
	FourLeadParallel: {"4-lead-Parallel", 4, 4, Quarter, func(r float64) float64 { return r / 4 }},
	TwoLeadParallel:  {"2-lead-Parallel", 2, 2, Half, func(r float64) float64 { return r / 2 }},
	TwoLeadSeries:    {"2-lead-Series", 2, 1, Half, func(r float64) float64 { return 2 * r }},
}

// All returns the five topologies in enumeration order.
func All() []Topology {
	out := make([]Topology, count)
	for i := range out {
		out[i] = Topology(i)
	}

	return out
}

// ForCondition returns the topologies tried for a candidate of condition c,
// in enumeration order. Unknown conditions yield nil.
//
//	Quarter → Series-Parallel, 4-lead-Series, 4-lead-Parallel
//	Half    → 2-lead-Parallel, 2-lead-Series
func ForCondition(c Condition) []Topology {
	var out []Topology
	for i := range table {
		if table[i].condition == c {
			out = append(out, Topology(i))
		}
	}

	return out
}

// ByName resolves a display name such as "4-lead-Series".
func ByName(name string) (Topology, bool) {
	for i := range table {
		if table[i].name == name {
			return Topology(i), true
		}
	}

	return 0, false
}

// Valid reports whether t is one of the five topologies.
func (t Topology) Valid() bool { return t < count }

// Name returns the display name, e.g. "Series-Parallel".
func (t Topology) Name() string {
	if !t.Valid() {
		return fmt.Sprintf("Topology(%d)", uint8(t))
	}

	return table[t].name
}

// String implements fmt.Stringer.
func (t Topology) String() string { return t.Name() }

// LeadGroupCount returns the number of leads the topology terminates in: 4 or 2.
func (t Topology) LeadGroupCount() int {
	if !t.Valid() {
		return 0
	}

	return table[t].leads
}

// ParallelBranches returns how many parallel current paths the wiring forms.
func (t Topology) ParallelBranches() int {
	if !t.Valid() {
		return 0
	}

	return table[t].branches
}

// Condition returns the load-sharing condition the topology belongs to.
func (t Topology) Condition() Condition {
	if !t.Valid() {
		return Condition(0xff)
	}

	return table[t].condition
}

// Resistance maps a base resistance (ohm/ft × length) to the effective
// resistance of this wiring. Unknown topologies return 0, which callers
// treat as degenerate geometry.
func (t Topology) Resistance(base float64) float64 {
	if !t.Valid() {
		return 0
	}

	return table[t].transform(base)
}
