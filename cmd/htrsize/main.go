// Command htrsize lists the heater models and wiring topologies that deliver
// a target wattage over a requested run length within supply limits.
//
//	htrsize 280 6
//	htrsize 600 20 -t 1 -f 1.25 --vmax 48 --format html > heaters.html
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "htrsize:", err)
		os.Exit(1)
	}
}
