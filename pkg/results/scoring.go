package results

import (
	"github.com/MagicAardvark/race-results-sub000/pkg/model"
)

// Strategy computes segment and overall representative times for one
// scoring mode. New modes are added as new implementations, not as extra
// branches inside existing ones.
type Strategy interface {
	// SegmentTotals picks the representative times for one segment's runs.
	SegmentTotals(runs []ScoredRun) (indexed, raw *float64)
	// OverallTotals combines segment results into the entrant's overall times.
	OverallTotals(segments []Segment) (indexed, raw *float64)
}

// StrategyFor returns the strategy for a scoring mode. Unknown modes get
// a strategy that yields no times at all, so the field degrades to "no
// winner computable" instead of failing.
func StrategyFor(mode model.ScoringMode) Strategy {
	switch mode {
	case model.ScoringSingleBest:
		return singleBest{}
	default:
		return unsupported{}
	}
}

// singleBest scores a segment by its single best run and an event by the
// minimum across segments.
type singleBest struct{}

func (singleBest) SegmentTotals(runs []ScoredRun) (*float64, *float64) {
	for _, run := range runs {
		if run.IsBest {
			return run.IndexedTotal, run.RawTotal
		}
	}
	return nil, nil
}

func (singleBest) OverallTotals(segments []Segment) (*float64, *float64) {
	var indexed, raw []float64
	for _, seg := range segments {
		if seg.IndexedTotal != nil {
			indexed = append(indexed, *seg.IndexedTotal)
		}
		if seg.RawTotal != nil {
			raw = append(raw, *seg.RawTotal)
		}
	}
	// The minimums are taken independently. With index multipliers in play
	// the fastest indexed segment need not be the fastest raw segment.
	if len(indexed) == 0 || len(raw) == 0 {
		return nil, nil
	}
	return minOf(indexed), minOf(raw)
}

type unsupported struct{}

func (unsupported) SegmentTotals([]ScoredRun) (*float64, *float64) { return nil, nil }
func (unsupported) OverallTotals([]Segment) (*float64, *float64)   { return nil, nil }

func minOf(values []float64) *float64 {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return &min
}
