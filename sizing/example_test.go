package sizing_test

import (
	"fmt"

	"github.com/katalvlaran/htrsize/catalog"
	"github.com/katalvlaran/htrsize/sizing"
	"github.com/katalvlaran/htrsize/topology"
)

// ExampleSearch sizes a 280 W run of about 6 ft against the built-in catalog.
//
// Scenario:
//
//	Each lead of heaters A, B and E may dissipate 17.5 W / 1.5 = 11.67 W.
//	Shared over four leads, 280 W needs exactly 6 ft of cable, so those
//	three heaters are sized; the wirings that stay under 60 V and 10 A
//	are returned, highest voltage first.
func ExampleSearch() {
	evals, err := sizing.Search(catalog.Default(), 280, 6)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, ev := range evals {
		fmt.Printf("%s %-16s %5.2f ft %6.2f ohm %5.2f A %5.2f V\n",
			ev.Heater.Code, ev.Topology, ev.Length, ev.Resistance, ev.MaxCurrent, ev.MaxVoltage)
	}
	// Output:
	// A Series-Parallel   6.00 ft  11.40 ohm  4.96 A 56.50 V
	// E 4-lead-Parallel   6.00 ft  10.50 ohm  5.16 A 54.22 V
	// B 4-lead-Parallel   6.00 ft   4.80 ohm  7.64 A 36.66 V
	// A 4-lead-Parallel   6.00 ft   2.85 ohm  9.91 A 28.25 V
}

// ExampleRequiredLength reproduces the worked example: heater A at 600 W
// needs ~12.86 ft under the quarter condition, outside 20 ± 0.5 ft.
func ExampleRequiredLength() {
	a, _ := catalog.Default().Lookup("A")
	l, err := sizing.RequiredLength(a, topology.Quarter, 600, 1.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.2f ft, accepted=%v\n", l, sizing.WithinTolerance(l, 20, 0.5))
	// Output:
	// 12.86 ft, accepted=false
}

// ExampleEvaluate shows Imax × Vmax recovering the target wattage.
func ExampleEvaluate() {
	a, _ := catalog.Default().Lookup("A")
	ev, err := sizing.Evaluate(a, 10, topology.TwoLeadSeries, 500)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("R=%.1f ohm I=%.3f A V=%.3f V P=%.0f W\n",
		ev.Resistance, ev.MaxCurrent, ev.MaxVoltage, ev.MaxCurrent*ev.MaxVoltage)
	// Output:
	// R=38.0 ohm I=3.627 A V=137.840 V P=500 W
}
