package sizing

import (
	"fmt"

	"github.com/katalvlaran/htrsize/catalog"
	"github.com/katalvlaran/htrsize/topology"
)

// RequiredLength returns the run length (ft) at which every lead of h
// dissipates exactly its derated rating when c.Leads() leads share watts.
//
//	limit   = h.MaxWattPerLead / safetyFactor
//	perLead = watts / c.Leads()   (4 for Quarter, 2 for Half)
//	length  = perLead / limit
//
// The result is > 0 whenever watts > 0 and safetyFactor > 0.
//
// Errors: ErrInvalidInput for watts <= 0, safetyFactor <= 0 or an unknown
// condition.
func RequiredLength(h catalog.HeaterModel, c topology.Condition, watts, safetyFactor float64) (float64, error) {
	if !positiveFinite(watts) {
		return 0, fmt.Errorf("%w: target watts must be > 0, got %g", ErrInvalidInput, watts)
	}
	if !positiveFinite(safetyFactor) {
		return 0, fmt.Errorf("%w: safety factor must be > 0, got %g", ErrInvalidInput, safetyFactor)
	}
	leads := c.Leads()
	if leads == 0 {
		return 0, fmt.Errorf("%w: unknown condition %s", ErrInvalidInput, c)
	}

	limit := h.MaxWattPerLead / safetyFactor
	perLead := watts / float64(leads)

	return perLead / limit, nil
}

// WithinTolerance reports requested-tolerance <= required <= requested+tolerance.
func WithinTolerance(required, requested, tolerance float64) bool {
	return requested-tolerance <= required && required <= requested+tolerance
}
