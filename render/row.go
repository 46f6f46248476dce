package render

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/htrsize/sizing"
)

// Decimal places per column.
const (
	LengthPlaces     int32 = 2
	ResistancePlaces int32 = 2
	CurrentPlaces    int32 = 3
	VoltagePlaces    int32 = 3
)

// missing is shown in place of a non-finite value.
const missing = "-"

// Row is one evaluation rounded for display. A numeric field is invalid
// when the source value was NaN or infinite.
type Row struct {
	Heater     string
	Length     decimal.NullDecimal
	Connection string
	Resistance decimal.NullDecimal
	MaxCurrent decimal.NullDecimal
	MaxVoltage decimal.NullDecimal
	Branches   int
}

// Round rounds v half away from zero to places decimal places.
// NaN and ±Inf yield an invalid NullDecimal.
func Round(v float64, places int32) decimal.NullDecimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(decimal.NewFromFloat(v).Round(places))
}

// fixed formats d with places decimals, or missing.
func fixed(d decimal.NullDecimal, places int32) string {
	if !d.Valid {
		return missing
	}

	return d.Decimal.StringFixed(places)
}

// floatPtr returns d as a float64, or nil when d is invalid.
func floatPtr(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()

	return &f
}

// NewRow rounds ev for display. It accepts any Evaluation, including the
// partial one Evaluate returns with ErrDegenerateGeometry.
func NewRow(ev sizing.Evaluation) Row {
	return Row{
		Heater:     ev.Heater.Code,
		Length:     Round(ev.Length, LengthPlaces),
		Connection: ev.Topology.Name(),
		Resistance: Round(ev.Resistance, ResistancePlaces),
		MaxCurrent: Round(ev.MaxCurrent, CurrentPlaces),
		MaxVoltage: Round(ev.MaxVoltage, VoltagePlaces),
		Branches:   ev.Topology.ParallelBranches(),
	}
}

// Rows rounds evals, keeping their order.
func Rows(evals []sizing.Evaluation) []Row {
	out := make([]Row, len(evals))
	for i, ev := range evals {
		out[i] = NewRow(ev)
	}

	return out
}

// Headers returns the column titles.
func Headers(opts Options) []string {
	h := []string{"Heater", "Length (ft)", "Connection", "Resistance (ohm)", "Imax (A)", "Vmax (V)"}
	if opts.Branches {
		h = append(h, "Branches")
	}

	return h
}

// Cells returns r as display strings, matching Headers(opts).
func (r Row) Cells(opts Options) []string {
	c := []string{
		r.Heater,
		fixed(r.Length, LengthPlaces),
		r.Connection,
		fixed(r.Resistance, ResistancePlaces),
		fixed(r.MaxCurrent, CurrentPlaces),
		fixed(r.MaxVoltage, VoltagePlaces),
	}
	if opts.Branches {
		c = append(c, strconv.Itoa(r.Branches))
	}

	return c
}
