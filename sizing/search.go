package sizing

import (
	"errors"
	"sort"

	"github.com/katalvlaran/htrsize/catalog"
	"github.com/katalvlaran/htrsize/topology"
)

// Candidates runs the length-sizing stage of Search on its own: every
// (heater, condition) pair whose required length lies within the tolerance
// window of requestedLength, in discovery order (catalog order, then
// Quarter before Half).
//
// Errors: ErrInvalidInput, reported before any sizing.
func Candidates(cat *catalog.Catalog, watts, requestedLength float64, opts ...Option) ([]Candidate, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateRequest(cat, watts, requestedLength); err != nil {
		return nil, err
	}

	return candidates(cat, watts, requestedLength, o)
}

// Search returns every heater/topology configuration that delivers watts
// over a run of requestedLength (± Tolerance) within both ceilings, ranked
// by MaxVoltage, highest first.
//
// Algorithm:
//  1. For each heater (catalog order) and condition (Quarter, Half), size
//     the run with RequiredLength; keep it if WithinTolerance.
//  2. For each kept candidate, enumerate topology.ForCondition(condition).
//  3. Evaluate each triple; keep it if IsFeasible. Degenerate geometry is a
//     rejection, never an error.
//  4. Stable-sort descending by MaxVoltage. Ties keep discovery order:
//     catalog, then condition, then topology enumeration order.
//
// An empty, non-nil slice means no configuration satisfies the constraints.
//
// Errors: ErrInvalidInput, reported before any evaluation.
//
// Complexity: O(models × topologies) evaluations plus an O(k log k) sort of
// the k survivors.
func Search(cat *catalog.Catalog, watts, requestedLength float64, opts ...Option) ([]Evaluation, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateRequest(cat, watts, requestedLength); err != nil {
		return nil, err
	}

	cands, err := candidates(cat, watts, requestedLength, o)
	if err != nil {
		return nil, err
	}

	limits := o.Limits()
	kept := make([]Evaluation, 0, len(cands)*2)
	for _, c := range cands {
		for _, t := range topology.ForCondition(c.Condition) {
			ev, eerr := Evaluate(c.Heater, c.Length, t, watts)
			var verdict Verdict
			switch {
			case errors.Is(eerr, ErrDegenerateGeometry):
				verdict = RejectedDegenerate
			case eerr != nil:
				return nil, eerr
			default:
				verdict = limits.classify(ev)
			}
			o.OnCandidate(ev, verdict)
			if verdict == Accepted {
				kept = append(kept, ev)
			}
		}
	}

	// Stable: equal voltages stay in discovery order.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].MaxVoltage > kept[j].MaxVoltage
	})

	return kept, nil
}

// candidates is the validated core of Candidates.
func candidates(cat *catalog.Catalog, watts, requestedLength float64, o Options) ([]Candidate, error) {
	var out []Candidate
	for _, h := range cat.Models() {
		for _, c := range topology.Conditions() {
			length, err := RequiredLength(h, c, watts, o.SafetyFactor)
			if err != nil {
				return nil, err
			}
			// underflow on extreme inputs; a run must have positive length
			if !positiveFinite(length) {
				continue
			}
			if WithinTolerance(length, requestedLength, o.Tolerance) {
				out = append(out, Candidate{Heater: h, Length: length, Condition: c})
			}
		}
	}

	return out, nil
}
