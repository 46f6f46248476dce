package catalog

// defaultModels is the built-in product line. Per-foot resistances are the
// nameplate values; lead ratings are derated to 70% of nameplate.
var defaultModels = []HeaterModel{
	{Code: "A", OhmsPerFoot: 1.9, MaxWattPerLead: 17.5},
	{Code: "B", OhmsPerFoot: 3.2, MaxWattPerLead: 17.5},
	{Code: "C", OhmsPerFoot: 4.0, MaxWattPerLead: 16.1},
	{Code: "D", OhmsPerFoot: 4.9, MaxWattPerLead: 14.0},
	{Code: "E", OhmsPerFoot: 7.0, MaxWattPerLead: 17.5},
	{Code: "F", OhmsPerFoot: 8.8, MaxWattPerLead: 16.1},
	{Code: "G", OhmsPerFoot: 10.8, MaxWattPerLead: 14.0},
	{Code: "H", OhmsPerFoot: 13.2, MaxWattPerLead: 14.0},
	{Code: "J", OhmsPerFoot: 21.3, MaxWattPerLead: 9.1},
	{Code: "K", OhmsPerFoot: 26.8, MaxWattPerLead: 7.0},
}

var defaultCatalog = MustNew(defaultModels...)

// Default returns the built-in catalog (codes A..K, no I).
// The returned Catalog is shared and immutable.
func Default() *Catalog { return defaultCatalog }
