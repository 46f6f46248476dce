package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/htrsize/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoHeaters = `
heaters:
  - code: X1
    ohms_per_foot: 2.5
    max_watt_per_lead: 12
  - code: X2
    ohms_per_foot: 5
    max_watt_per_lead: 10
`

// TestLoad_Valid decodes a well-formed document and keeps file order.
func TestLoad_Valid(t *testing.T) {
	cat, err := catalog.Load(strings.NewReader(twoHeaters))
	require.NoError(t, err)

	assert.Equal(t, []string{"X1", "X2"}, cat.Codes())
	x2, ok := cat.Lookup("X2")
	require.True(t, ok)
	assert.Equal(t, 5.0, x2.OhmsPerFoot)
	assert.Equal(t, 10.0, x2.MaxWattPerLead)
}

// TestLoad_Errors maps malformed documents onto catalog sentinels.
func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty document", "", catalog.ErrEmptyCatalog},
		{"no heaters", "heaters: []\n", catalog.ErrEmptyCatalog},
		{"unknown field", "heaters:\n  - code: A\n    ohms_per_foot: 1\n    max_watt_per_lead: 1\n    colour: red\n", catalog.ErrInvalidModel},
		{"missing code", "heaters:\n  - ohms_per_foot: 1\n    max_watt_per_lead: 1\n", catalog.ErrInvalidModel},
		{"zero ohms", "heaters:\n  - code: A\n    ohms_per_foot: 0\n    max_watt_per_lead: 1\n", catalog.ErrInvalidModel},
		{"negative watts", "heaters:\n  - code: A\n    ohms_per_foot: 1\n    max_watt_per_lead: -1\n", catalog.ErrInvalidModel},
		{"infinite ohms", "heaters:\n  - code: A\n    ohms_per_foot: .inf\n    max_watt_per_lead: 1\n", catalog.ErrInvalidModel},
		{"not yaml", "heaters: [\n", catalog.ErrInvalidModel},
		{"second document", twoHeaters + "---\n" + twoHeaters, catalog.ErrInvalidModel},
		{"trailing scalar document", twoHeaters + "---\nextra\n", catalog.ErrInvalidModel},
		{"duplicate", "heaters:\n  - {code: A, ohms_per_foot: 1, max_watt_per_lead: 1}\n  - {code: A, ohms_per_foot: 2, max_watt_per_lead: 2}\n", catalog.ErrDuplicateCode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestLoad_FieldNameInError reports the yaml key that failed validation.
func TestLoad_FieldNameInError(t *testing.T) {
	_, err := catalog.Load(strings.NewReader("heaters:\n  - code: A\n    ohms_per_foot: 0\n    max_watt_per_lead: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ohms_per_foot")
}

// TestLoadFile reads from disk and reports missing files.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "heaters.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoHeaters), 0o600))

	cat, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	_, err = catalog.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
