package catalog_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/htrsize/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault_Contents verifies the built-in catalog order and the worked
// example heater A.
func TestDefault_Contents(t *testing.T) {
	cat := catalog.Default()

	assert.Equal(t, 10, cat.Len(), "built-in catalog has ten models")
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H", "J", "K"}, cat.Codes())

	a, ok := cat.Lookup("A")
	require.True(t, ok, "heater A must exist")
	assert.Equal(t, 1.9, a.OhmsPerFoot)
	assert.Equal(t, 17.5, a.MaxWattPerLead)

	_, ok = cat.Lookup("I")
	assert.False(t, ok, "code I is not part of the product line")
}

// TestDefault_AllModelsPositive checks every built-in constant is usable.
func TestDefault_AllModelsPositive(t *testing.T) {
	for _, m := range catalog.Default().Models() {
		assert.Greater(t, m.OhmsPerFoot, 0.0, m.Code)
		assert.Greater(t, m.MaxWattPerLead, 0.0, m.Code)
	}
}

// TestModels_ReturnsCopy ensures callers cannot mutate a catalog through
// the slice returned by Models.
func TestModels_ReturnsCopy(t *testing.T) {
	cat := catalog.Default()
	ms := cat.Models()
	ms[0].OhmsPerFoot = 999

	a, _ := cat.Lookup("A")
	assert.Equal(t, 1.9, a.OhmsPerFoot, "catalog must be unaffected by caller mutation")
}

// TestNew_Errors covers every construction failure.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		models []catalog.HeaterModel
		want   error
	}{
		{"empty", nil, catalog.ErrEmptyCatalog},
		{"empty code", []catalog.HeaterModel{{Code: "", OhmsPerFoot: 1, MaxWattPerLead: 1}}, catalog.ErrInvalidModel},
		{"zero ohms", []catalog.HeaterModel{{Code: "X", OhmsPerFoot: 0, MaxWattPerLead: 1}}, catalog.ErrInvalidModel},
		{"negative watts", []catalog.HeaterModel{{Code: "X", OhmsPerFoot: 1, MaxWattPerLead: -2}}, catalog.ErrInvalidModel},
		{"infinite ohms", []catalog.HeaterModel{{Code: "X", OhmsPerFoot: math.Inf(1), MaxWattPerLead: 1}}, catalog.ErrInvalidModel},
		{"nan watts", []catalog.HeaterModel{{Code: "X", OhmsPerFoot: 1, MaxWattPerLead: math.NaN()}}, catalog.ErrInvalidModel},
		{"duplicate", []catalog.HeaterModel{
			{Code: "X", OhmsPerFoot: 1, MaxWattPerLead: 1},
			{Code: "X", OhmsPerFoot: 2, MaxWattPerLead: 2},
		}, catalog.ErrDuplicateCode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.New(tc.models...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestMustNew_Panics ensures MustNew surfaces invalid tables immediately.
func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { catalog.MustNew() })
}

// TestLeadCurrentLimit checks sqrt(W/ohm) on a round example.
func TestLeadCurrentLimit(t *testing.T) {
	h := catalog.HeaterModel{Code: "T", OhmsPerFoot: 4, MaxWattPerLead: 16}
	assert.InDelta(t, 2.0, h.LeadCurrentLimit(), 1e-12)
}

// TestHeaterModel_String formats code and constants.
func TestHeaterModel_String(t *testing.T) {
	h := catalog.HeaterModel{Code: "A", OhmsPerFoot: 1.9, MaxWattPerLead: 17.5}
	assert.Equal(t, "A (1.9 ohm/ft, 17.5 W/lead)", h.String())
}
