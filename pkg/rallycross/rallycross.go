// Package rallycross rescores class results under cumulative rallycross
// rules: every run counts, missing runs are padded, and penalties are
// fixed per-run additions instead of best-run selection.
package rallycross

import (
	"sort"
	"strconv"
	"strings"

	"github.com/MagicAardvark/race-results-sub000/pkg/model"
	"github.com/MagicAardvark/race-results-sub000/pkg/results"
)

const (
	// Rallycross scoring uses its own fixed penalties, independent of the
	// event's configured cone penalty. Kept literal on purpose; worth
	// exposing as configuration if a club ever runs different rules.
	ConePenaltySeconds = 2.0
	DNFPenaltySeconds  = 10.0

	// PadTime is the synthetic time for runs a driver never took. Large
	// enough that a padded run can never be anyone's best.
	PadTime   = 100.0
	padStatus = "CLEAN"
)

// Run is one run in the rallycross model.
type Run struct {
	Number int     `json:"number"`
	Status string  `json:"status"`
	Time   float64 `json:"time"`
	Cones  int     `json:"coneCount"`
	IsBest bool    `json:"isBest"`
}

// RunInfo carries a driver's runs plus every derived total the rallycross
// view displays.
type RunInfo struct {
	CleanCount        int     `json:"cleanCount"`
	ConeCount         int     `json:"coneCount"`
	DNFCount          int     `json:"dnfCount"`
	Runs              []Run   `json:"runs"`
	Total             float64 `json:"total"`
	PaxTime           float64 `json:"paxTime"`
	RallyCrossTime    float64 `json:"rallyCrossTime"`
	RallyCrossToFirst float64 `json:"rallyCrossToFirst"`
	RallyCrossToNext  float64 `json:"rallyCrossToNext"`
	ToFirstInClass    float64 `json:"toFirstInClass"`
	ToNextInClass     float64 `json:"toNextInClass"`
	ToFirstInPax      float64 `json:"toFirstInPax"`
	ToNextInPax       float64 `json:"toNextInPax"`
}

// Entry is one driver in the rallycross view.
type Entry struct {
	DriverName string  `json:"driverName"`
	CarNumber  string  `json:"carNumber"`
	CarModel   string  `json:"carModel"`
	Class      string  `json:"class"`
	Position   string  `json:"position"`
	RunInfo    RunInfo `json:"runInfo"`
}

// FromClassResult flattens ranked class entries into the rallycross model.
func FromClassResult(cr results.ClassResult) []Entry {
	entries := make([]Entry, 0, len(cr.Entries))
	for _, re := range cr.Entries {
		info := RunInfo{
			CleanCount:     re.TotalClean,
			ConeCount:      re.TotalCones,
			DNFCount:       re.TotalDNF,
			Total:          deref(re.RawTotal),
			PaxTime:        deref(re.IndexedTotal),
			ToFirstInClass: deref(re.ClassPosition.ToFirst),
			ToNextInClass:  deref(re.ClassPosition.ToNext),
			ToFirstInPax:   deref(re.IndexedPosition.ToFirst),
			ToNextInPax:    deref(re.IndexedPosition.ToNext),
		}
		number := 0
		for _, seg := range re.Segments {
			for _, run := range seg.Runs {
				number++
				info.Runs = append(info.Runs, Run{
					Number: number,
					Status: strings.ToUpper(string(run.Status)),
					Time:   run.Time,
					Cones:  run.Penalty,
					IsBest: run.IsBest,
				})
			}
		}
		entries = append(entries, Entry{
			DriverName: re.DriverName,
			CarNumber:  re.CarNumber,
			CarModel:   re.CarModel,
			Class:      re.Class,
			Position:   strconv.Itoa(re.ClassPosition.Position),
			RunInfo:    info,
		})
	}
	return entries
}

// Transform rescores one class's entries under rallycross rules: pad every
// driver to expectedRuns, sum all runs with the fixed penalties, then
// re-rank. The leader's gaps are zero here, not null.
func Transform(entries []Entry, expectedRuns int) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	for i := range out {
		runs := padRuns(out[i].RunInfo.Runs, expectedRuns)
		total := 0.0
		for _, run := range runs {
			if isDNF(run.Status) {
				total += run.Time + DNFPenaltySeconds
			} else {
				total += run.Time + float64(run.Cones)*ConePenaltySeconds
			}
		}
		out[i].RunInfo.Runs = runs
		out[i].RunInfo.RallyCrossTime = total
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RunInfo.RallyCrossTime < out[j].RunInfo.RallyCrossTime
	})

	for i := range out {
		out[i].Position = strconv.Itoa(i + 1)
		if i == 0 {
			out[i].RunInfo.RallyCrossToFirst = 0
			out[i].RunInfo.RallyCrossToNext = 0
			continue
		}
		out[i].RunInfo.RallyCrossToFirst = out[i].RunInfo.RallyCrossTime - out[0].RunInfo.RallyCrossTime
		out[i].RunInfo.RallyCrossToNext = out[i].RunInfo.RallyCrossTime - out[i-1].RunInfo.RallyCrossTime
	}
	return out
}

func padRuns(runs []Run, expected int) []Run {
	padded := make([]Run, len(runs), max(len(runs), expected))
	copy(padded, runs)
	for i := len(runs); i < expected; i++ {
		padded = append(padded, Run{
			Number: i + 1,
			Status: padStatus,
			Time:   PadTime,
		})
	}
	return padded
}

func isDNF(status string) bool {
	return strings.EqualFold(status, string(model.StatusDNF))
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
