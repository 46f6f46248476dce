package catalog

import "errors"

var (
	// ErrInvalidModel indicates a heater model with an empty code or a
	// non-positive (or non-finite) physical constant.
	ErrInvalidModel = errors.New("catalog: invalid heater model")

	// ErrDuplicateCode indicates two models in one catalog share a code.
	ErrDuplicateCode = errors.New("catalog: duplicate heater code")

	// ErrEmptyCatalog indicates a catalog with no models.
	ErrEmptyCatalog = errors.New("catalog: no heater models")
)
