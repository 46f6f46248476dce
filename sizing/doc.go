// Package sizing finds the heater models and wiring topologies that deliver
// a target wattage over a requested run length without exceeding supply
// voltage and current ceilings.
//
// 🚀 How the search works
//
//	For every heater in a catalog and for both load-sharing conditions
//	(quarter: 4 leads, half: 2 leads) the LengthSizer computes the run
//	length at which each lead dissipates exactly its derated rating:
//
//	  limit    = MaxWattPerLead / SafetyFactor
//	  perLead  = Watts / leads
//	  length   = perLead / limit
//
//	Lengths within Tolerance of the requested length are kept. Each kept
//	candidate is evaluated in every topology of its condition:
//
//	  R    = transform(OhmsPerFoot × length)
//	  Imax = sqrt(Watts / R)
//	  Vmax = sqrt(Watts × R)
//
//	Evaluations within both ceilings survive and are ranked by Vmax,
//	highest first, ties kept in discovery order.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/htrsize/catalog"
//	  "github.com/katalvlaran/htrsize/sizing"
//	)
//
//	evals, err := sizing.Search(catalog.Default(), 280, 6,
//	  sizing.WithTolerance(0.5),
//	  sizing.WithSafetyFactor(1.5),
//	  sizing.WithVoltageCeiling(60),
//	)
//
// Defaults: Tolerance 0.5 ft, SafetyFactor 1.5, VoltageCeiling 60 V,
// CurrentCeiling 10 A.
//
// Errors:
//   - ErrInvalidInput : non-positive watts/length/factor/ceilings,
//     negative tolerance, nil catalog. Reported before any evaluation.
//   - ErrDegenerateGeometry : Evaluate on a non-positive or non-finite
//     resistance. Search treats it as an infeasible candidate.
//
// Complexity: O(models × topologies); at most 60 evaluations for a
// ten-model catalog. Single-threaded and allocation-light.
package sizing
