package results

import (
	"fmt"
	"strings"

	"github.com/MagicAardvark/race-results-sub000/pkg/model"
)

// Segment is one heat's worth of scored runs plus its aggregates. Runs
// are kept in run-number order (run N is Runs[N-1]).
type Segment struct {
	Runs         []ScoredRun `json:"runs"`
	IndexedTotal *float64    `json:"indexedTotalTime"`
	RawTotal     *float64    `json:"rawTotalTime"`
	TotalClean   int         `json:"totalClean"`
	TotalCones   int         `json:"totalCones"`
	TotalDNF     int         `json:"totalDNF"`
}

// Entry is one entrant after scoring and aggregation, before ranking.
type Entry struct {
	Key          string    `json:"entryKey"`
	MsrID        string    `json:"msrId"`
	Email        string    `json:"email"`
	Class        string    `json:"class"`
	CarNumber    string    `json:"carNumber"`
	DriverName   string    `json:"driverName"`
	CarModel     string    `json:"carModel"`
	CarColor     string    `json:"carColor"`
	Sponsor      string    `json:"sponsor"`
	TotalClean   int       `json:"totalClean"`
	TotalCones   int       `json:"totalCones"`
	TotalDNF     int       `json:"totalDNF"`
	IndexedTotal *float64  `json:"indexedTotalTime"`
	RawTotal     *float64  `json:"rawTotalTime"`
	Segments     []Segment `json:"segments"`
}

// BuildEntry scores every run of one snapshot entry and aggregates it into
// an Entry. indexValue comes from the entrant's class configuration; pass 0
// (or 1) when the class is unknown.
func BuildEntry(se model.SnapshotEntry, cfg model.EventConfig, indexValue float64) Entry {
	class := strings.ToUpper(se.Class)
	strategy := StrategyFor(cfg.ScoringMode)

	entry := Entry{
		Key:        fmt.Sprintf("%s-%s-%s", class, se.CarNumber, se.DriverName),
		MsrID:      se.MsrID,
		Email:      se.Email,
		Class:      class,
		CarNumber:  se.CarNumber,
		DriverName: se.DriverName,
		CarModel:   se.CarModel,
		CarColor:   se.CarColor,
		Sponsor:    se.Sponsor,
	}

	for _, rawRuns := range se.Runs {
		seg := buildSegment(rawRuns, cfg.ConePenaltySeconds, indexValue, strategy)
		entry.TotalClean += seg.TotalClean
		entry.TotalCones += seg.TotalCones
		entry.TotalDNF += seg.TotalDNF
		entry.Segments = append(entry.Segments, seg)
	}

	entry.IndexedTotal, entry.RawTotal = strategy.OverallTotals(entry.Segments)
	return entry
}

func buildSegment(rawRuns []model.RawRun, conePenalty, indexValue float64, strategy Strategy) Segment {
	seg := Segment{}
	for _, raw := range rawRuns {
		run := ScoreRun(raw, conePenalty, indexValue)
		switch run.Status {
		case model.StatusClean:
			seg.TotalClean++
		case model.StatusDNF:
			seg.TotalDNF++
		}
		seg.TotalCones += run.Penalty
		seg.Runs = append(seg.Runs, run)
	}

	// Flag the best run in a fresh pass rather than mutating mid-iteration.
	// Strict less-than keeps the earliest run on a tie.
	best := -1
	for i, run := range seg.Runs {
		if run.RawTotal == nil {
			continue
		}
		if best == -1 || *run.RawTotal < *seg.Runs[best].RawTotal {
			best = i
		}
	}
	if best >= 0 {
		seg.Runs[best].IsBest = true
	}

	seg.IndexedTotal, seg.RawTotal = strategy.SegmentTotals(seg.Runs)
	return seg
}
