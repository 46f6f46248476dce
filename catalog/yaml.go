package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// fileYAML is the on-disk catalog layout.
//
//	heaters:
//	  - code: A
//	    ohms_per_foot: 1.9
//	    max_watt_per_lead: 17.5
type fileYAML struct {
	Heaters []heaterYAML `yaml:"heaters" validate:"required,min=1,dive"`
}

// heaterYAML is one heater entry.
type heaterYAML struct {
	Code           string  `yaml:"code" validate:"required"`
	OhmsPerFoot    float64 `yaml:"ohms_per_foot" validate:"gt=0"`
	MaxWattPerLead float64 `yaml:"max_watt_per_lead" validate:"gt=0"`
}

var (
	validateOnce  sync.Once
	yamlValidator *validator.Validate
)

// fileValidator returns the shared validator, reporting yaml tag names in
// field errors.
func fileValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("yaml")
			if tag == "" || tag == "-" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}

			return tag
		})
		yamlValidator = v
	})

	return yamlValidator
}

// Load decodes a YAML catalog from r and builds a Catalog from it.
// Unknown keys are rejected.
//
// Errors:
//   - ErrEmptyCatalog : no heaters in the document
//   - ErrInvalidModel : a malformed document, more than one document, or an
//     entry failing validation
//   - ErrDuplicateCode : a code appears twice
func Load(r io.Reader) (*Catalog, error) {
	var doc fileYAML
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}

		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidModel, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decode yaml: expected a single document", ErrInvalidModel)
	}
	if len(doc.Heaters) == 0 {
		return nil, ErrEmptyCatalog
	}

	if err := fileValidator().Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, fmt.Errorf("%w: %s failed %q", ErrInvalidModel, fe.Namespace(), fe.Tag())
		}

		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}

	models := make([]HeaterModel, len(doc.Heaters))
	for i, h := range doc.Heaters {
		models[i] = HeaterModel{
			Code:           h.Code,
			OhmsPerFoot:    h.OhmsPerFoot,
			MaxWattPerLead: h.MaxWattPerLead,
		}
	}

	return New(models...)
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}
