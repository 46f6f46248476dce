package catalog

import (
	"fmt"
	"math"
)

// HeaterModel is one heater product.
//
// Fields:
//   - Code : catalog identifier, unique within a Catalog.
//   - OhmsPerFoot : resistance of one foot of heater cable, > 0.
//   - MaxWattPerLead : rated power one lead may dissipate, > 0.
//
// HeaterModel is a plain value; copies are independent and nothing in this
// module mutates one after construction.
type HeaterModel struct {
	Code           string
	OhmsPerFoot    float64
	MaxWattPerLead float64
}

// LeadCurrentLimit returns the current a lead carries when dissipating its
// rated power in one foot of cable: sqrt(MaxWattPerLead / OhmsPerFoot).
func (h HeaterModel) LeadCurrentLimit() float64 {
	return math.Sqrt(h.MaxWattPerLead / h.OhmsPerFoot)
}

// String returns "<code> (<ohm>/ft, <W>/lead)".
func (h HeaterModel) String() string {
	return fmt.Sprintf("%s (%g ohm/ft, %g W/lead)", h.Code, h.OhmsPerFoot, h.MaxWattPerLead)
}

// validate enforces the HeaterModel contract.
//
// Complexity: O(1).
func (h HeaterModel) validate() error {
	if h.Code == "" {
		return fmt.Errorf("%w: empty code", ErrInvalidModel)
	}
	if !positiveFinite(h.OhmsPerFoot) {
		return fmt.Errorf("%w: %s: ohms per foot must be > 0, got %g", ErrInvalidModel, h.Code, h.OhmsPerFoot)
	}
	if !positiveFinite(h.MaxWattPerLead) {
		return fmt.Errorf("%w: %s: max watt per lead must be > 0, got %g", ErrInvalidModel, h.Code, h.MaxWattPerLead)
	}

	return nil
}

// positiveFinite reports whether v is a finite number > 0.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
