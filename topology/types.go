package topology

import "fmt"

// Condition is how many leads share the total load.
type Condition uint8

const (
	// Quarter: the load is shared by four leads.
	Quarter Condition = iota

	// Half: the load is shared by two leads.
	Half
)

// Conditions returns both conditions in search order (Quarter before Half).
func Conditions() []Condition { return []Condition{Quarter, Half} }

// Leads returns the number of leads sharing the load: 4 or 2.
// Returns 0 for an unknown Condition.
func (c Condition) Leads() int {
	switch c {
	case Quarter:
		return 4
	case Half:
		return 2
	default:
		return 0
	}
}

// Valid reports whether c is Quarter or Half.
func (c Condition) Valid() bool { return c == Quarter || c == Half }

// String implements fmt.Stringer.
func (c Condition) String() string {
	switch c {
	case Quarter:
		return "quarter"
	case Half:
		return "half"
	default:
		return fmt.Sprintf("Condition(%d)", uint8(c))
	}
}

// Topology identifies one of the five wiring configurations.
// The zero value is SeriesParallel.
type Topology uint8

// Topologies in enumeration order.
const (
	SeriesParallel Topology = iota
	FourLeadSeries
	FourLeadParallel
	TwoLeadParallel
	TwoLeadSeries

	count
)
