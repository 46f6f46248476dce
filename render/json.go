package render

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/htrsize/sizing"
)

// jsonRow is the wire shape of one rounded evaluation. Non-finite values
// encode as null.
type jsonRow struct {
	Heater     string   `json:"heater"`
	Length     *float64 `json:"length_ft"`
	Connection string   `json:"connection"`
	Resistance *float64 `json:"resistance_ohm"`
	MaxCurrent *float64 `json:"max_current_a"`
	MaxVoltage *float64 `json:"max_voltage_v"`
	Branches   int      `json:"branches,omitempty"`
}

// JSON writes evals as an indented JSON array. An empty list is "[]".
func JSON(w io.Writer, evals []sizing.Evaluation, opts Options) error {
	out := make([]jsonRow, 0, len(evals))
	for _, r := range Rows(evals) {
		jr := jsonRow{
			Heater:     r.Heater,
			Length:     floatPtr(r.Length),
			Connection: r.Connection,
			Resistance: floatPtr(r.Resistance),
			MaxCurrent: floatPtr(r.MaxCurrent),
			MaxVoltage: floatPtr(r.MaxVoltage),
		}
		if opts.Branches {
			jr.Branches = r.Branches
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
