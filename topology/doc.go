// Package topology enumerates the wiring configurations a heater can be
// connected in and the load-sharing conditions that select among them.
//
// A heater run is terminated in either four leads (Quarter condition, each
// lead carries a quarter of the load) or two leads (Half condition). Each
// Topology maps the base resistance of the run, ohm/ft × length, to the
// effective resistance seen by the supply:
//
//	Topology          Transform   Leads  Condition
//	Series-Parallel   r           4      Quarter
//	4-lead-Series     4r          4      Quarter
//	4-lead-Parallel   r/4         4      Quarter
//	2-lead-Parallel   r/2         2      Half
//	2-lead-Series     2r          2      Half
//
// The set is fixed; Topology is a small tagged value backed by a lookup
// table, not an interface.
package topology
