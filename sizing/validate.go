package sizing

import (
	"fmt"
	"math"

	"github.com/katalvlaran/htrsize/catalog"
)

// validateRequest checks the per-call inputs of Search and Candidates.
//
// Complexity: O(1).
func validateRequest(cat *catalog.Catalog, watts, length float64) error {
	if cat == nil {
		return fmt.Errorf("%w: catalog is nil", ErrInvalidInput)
	}
	if !positiveFinite(watts) {
		return fmt.Errorf("%w: target watts must be > 0, got %g", ErrInvalidInput, watts)
	}
	if !positiveFinite(length) {
		return fmt.Errorf("%w: requested length must be > 0, got %g", ErrInvalidInput, length)
	}

	return nil
}

// positiveFinite reports whether v is a finite number > 0.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
