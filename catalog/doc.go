// Package catalog holds the heater models the sizing search iterates over.
//
// 🚀 What is a heater model?
//
//	A resistance-heater product line is described by two physical constants
//	per model: the resistance of one foot of heater cable (ohm/ft) and the
//	power a single lead may dissipate (W/lead). Everything else in the
//	sizing calculation is derived from those two numbers.
//
// ✨ Key features:
//   - immutable HeaterModel records, validated on construction
//   - ordered Catalog with unique codes; order is the search discovery order
//   - built-in Default catalog (codes A..K)
//   - YAML loading (Load / LoadFile) for replacement catalogs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/htrsize/catalog"
//
//	cat := catalog.Default()
//	a, ok := cat.Lookup("A")
//
//	// or from a file
//	cat, err := catalog.LoadFile("heaters.yaml")
//
// Errors:
//   - ErrInvalidModel : empty code or non-positive / non-finite constants
//   - ErrDuplicateCode : two models share a code
//   - ErrEmptyCatalog : no models supplied
package catalog
