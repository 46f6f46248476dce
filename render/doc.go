// Package render formats a ranked list of sizing evaluations for people and
// for other programs.
//
// Three formats are supported:
//
//	table : a bordered terminal table (lipgloss)
//	html : a styled "Possible Heaters" table fragment
//	json : an array of rounded records
//
// Every format shows the same columns in the same order, with numbers
// rounded half away from zero: length and resistance to 2 places, current
// and voltage to 3.
//
//	Heater | Length (ft) | Connection | Resistance (ohm) | Imax (A) | Vmax (V) [| Branches]
package render
