package results

import (
	"github.com/MagicAardvark/race-results-sub000/pkg/model"
)

// ScoredRun is one run after penalty and index application. RawTotal and
// IndexedTotal are nil for a DNF run.
type ScoredRun struct {
	Status       model.RunStatus `json:"status"`
	Time         float64         `json:"time"`
	RawTotal     *float64        `json:"rawTotalTime"`
	IndexedTotal *float64        `json:"indexedTotalTime"`
	Penalty      int             `json:"penalty"`
	IsBest       bool            `json:"isBest"`
}

// ScoreRun converts one raw timing tuple into a scored run. An indexValue
// of 0 is treated as an unknown index and defaults to 1.
func ScoreRun(raw model.RawRun, conePenaltySeconds, indexValue float64) ScoredRun {
	if indexValue == 0 {
		indexValue = 1
	}

	run := ScoredRun{
		Status:  raw.Status.Normalize(),
		Time:    raw.Time,
		Penalty: raw.Cones,
	}
	if run.Status == model.StatusDNF {
		return run
	}

	total := raw.Time
	if run.Status == model.StatusDirty {
		total += float64(raw.Cones) * conePenaltySeconds
	}
	indexed := total * indexValue
	run.RawTotal = &total
	run.IndexedTotal = &indexed
	return run
}
