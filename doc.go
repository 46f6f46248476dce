// Package htrsize is a sizing calculator for resistance heat-trace: given a
// target wattage and an installed length, it finds the heater models and
// wiring topologies that deliver the load without exceeding supply voltage
// and current ceilings.
//
// 🚀 What is in the box?
//
//	A small, deterministic, dependency-light toolkit:
//		• Catalog: immutable heater models, built-in or loaded from YAML
//		• Topologies: the five lead wirings and their resistance transforms
//		• Sizing: lead-limited length sizing, electrical evaluation,
//		  feasibility filtering and ranked search
//		• Rendering: terminal table, HTML table, JSON
//		• htrsize: a command-line front end
//
// ✨ Why this layout?
//
//   - Pure core : no I/O, no globals, no goroutines; equal inputs give equal output
//   - Explicit configuration : every knob travels in sizing.Options
//   - Strict errors : sentinel values, matched with errors.Is
//
// Under the hood, everything is organized under these packages:
//
//	catalog/        HeaterModel, Catalog, Default, Load/LoadFile
//	topology/       Condition (quarter/half), Topology and its attributes
//	sizing/         RequiredLength, Evaluate, IsFeasible, Candidates, Search
//	render/         Table, HTML, JSON, rounding
//	cmd/htrsize/    the CLI
//
// Quick example:
//
//	htrsize 280 6
//
// lists A/Series-Parallel, E/4-lead-Parallel, B/4-lead-Parallel and
// A/4-lead-Parallel, highest supply voltage first.
//
//	go install github.com/katalvlaran/htrsize/cmd/htrsize@latest
package htrsize
