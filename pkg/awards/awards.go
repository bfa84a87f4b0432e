// Package awards derives the cross-cutting "special award" statistics from
// a computed result set.
package awards

import (
	"math"

	"github.com/MagicAardvark/race-results-sub000/pkg/model"
	"github.com/MagicAardvark/race-results-sub000/pkg/results"
)

// Winner names one award recipient. Value is the award's statistic: cone
// count, time gap, standard deviation or run time depending on the award.
type Winner struct {
	DriverName string  `json:"driverName"`
	CarNumber  string  `json:"carNumber"`
	Class      string  `json:"class"`
	Value      float64 `json:"value"`
}

// SpecialAwards is the fixed shape the awards presentation consumes. A nil
// winner means nobody qualified for that award.
type SpecialAwards struct {
	ConeKiller   *Winner  `json:"coneKiller"`
	HailMary     *Winner  `json:"hailMary"`
	Consistency  *Winner  `json:"consistency"`
	SpeedDemon   *Winner  `json:"speedDemon"`
	SqueakyClean []Winner `json:"squeakyClean"`
}

// Compute walks the full raw-results field once and derives every award.
// Ties keep the first entry encountered.
func Compute(field []results.ResultEntry) SpecialAwards {
	aw := SpecialAwards{SqueakyClean: []Winner{}}

	var bestGap, bestStdDev, fastest float64
	for _, entry := range field {
		cleanTimes := collectCleanTimes(entry)

		if entry.TotalCones > 0 && (aw.ConeKiller == nil || entry.TotalCones > int(aw.ConeKiller.Value)) {
			aw.ConeKiller = winner(entry, float64(entry.TotalCones))
		}

		if len(cleanTimes) >= 2 {
			first, second := twoFastest(cleanTimes)
			if gap := second - first; aw.HailMary == nil || gap > bestGap {
				aw.HailMary = winner(entry, gap)
				bestGap = gap
			}
			if sd := stdDev(cleanTimes); aw.Consistency == nil || sd < bestStdDev {
				aw.Consistency = winner(entry, sd)
				bestStdDev = sd
			}
		}

		if len(cleanTimes) > 0 {
			best := cleanTimes[0]
			for _, t := range cleanTimes[1:] {
				if t < best {
					best = t
				}
			}
			if aw.SpeedDemon == nil || best < fastest {
				aw.SpeedDemon = winner(entry, best)
				fastest = best
			}
		}

		if isSqueakyClean(entry) {
			aw.SqueakyClean = append(aw.SqueakyClean, *winner(entry, 0))
		}
	}
	return aw
}

func winner(entry results.ResultEntry, value float64) *Winner {
	return &Winner{
		DriverName: entry.DriverName,
		CarNumber:  entry.CarNumber,
		Class:      entry.Class,
		Value:      value,
	}
}

func collectCleanTimes(entry results.ResultEntry) []float64 {
	var times []float64
	for _, seg := range entry.Segments {
		for _, run := range seg.Runs {
			if run.Status == model.StatusClean {
				times = append(times, run.Time)
			}
		}
	}
	return times
}

// twoFastest returns the fastest and second-fastest of at least two times.
func twoFastest(times []float64) (float64, float64) {
	first := math.Inf(1)
	second := math.Inf(1)
	for _, t := range times {
		switch {
		case t < first:
			second = first
			first = t
		case t < second:
			second = t
		}
	}
	return first, second
}

// stdDev is the population standard deviation.
func stdDev(times []float64) float64 {
	mean := 0.0
	for _, t := range times {
		mean += t
	}
	mean /= float64(len(times))

	variance := 0.0
	for _, t := range times {
		variance += (t - mean) * (t - mean)
	}
	return math.Sqrt(variance / float64(len(times)))
}

func isSqueakyClean(entry results.ResultEntry) bool {
	if entry.TotalDNF > 0 || entry.TotalCones > 0 {
		return false
	}
	for _, seg := range entry.Segments {
		for _, run := range seg.Runs {
			if run.Status != model.StatusClean || run.Penalty > 0 {
				return false
			}
		}
	}
	return true
}
