package catalog

import "fmt"

// Catalog is an ordered, immutable set of heater models with unique codes.
// The order models were supplied in is the order the sizing search visits
// them, and therefore the first tie-break of its ranking.
type Catalog struct {
	models []HeaterModel
	index  map[string]int
}

// New validates models and returns a Catalog holding a private copy of them.
//
// Errors:
//   - ErrEmptyCatalog : len(models) == 0
//   - ErrInvalidModel : a model violates the HeaterModel contract
//   - ErrDuplicateCode : a code appears twice
//
// Complexity: O(n) time and space.
func New(models ...HeaterModel) (*Catalog, error) {
	if len(models) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		models: make([]HeaterModel, 0, len(models)),
		index:  make(map[string]int, len(models)),
	}
	for _, m := range models {
		if err := m.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[m.Code]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCode, m.Code)
		}
		c.index[m.Code] = len(c.models)
		c.models = append(c.models, m)
	}

	return c, nil
}

// MustNew is New that panics on error. Intended for package-level tables
// whose contents are known to be valid.
func MustNew(models ...HeaterModel) *Catalog {
	c, err := New(models...)
	if err != nil {
		panic(err)
	}

	return c
}

// Len returns the number of models.
func (c *Catalog) Len() int { return len(c.models) }

// Models returns a copy of the models in catalog order.
func (c *Catalog) Models() []HeaterModel {
	out := make([]HeaterModel, len(c.models))
	copy(out, c.models)

	return out
}

// Codes returns the model codes in catalog order.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.models))
	for i, m := range c.models {
		out[i] = m.Code
	}

	return out
}

// Lookup returns the model with the given code.
func (c *Catalog) Lookup(code string) (HeaterModel, bool) {
	i, ok := c.index[code]
	if !ok {
		return HeaterModel{}, false
	}

	return c.models[i], true
}
