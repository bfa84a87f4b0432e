package helper

import (
	"math"
	"sort"
)

const (
	defaultMaxGap = 3.0
	trackSpan     = 65.0
	trackOffset   = 8.0
	trackLimit    = 70.0
)

// GapScaleMax returns the scale ceiling for rendering relative gaps: the
// 70th percentile of the given non-zero gaps. Scaling to the percentile
// instead of the maximum keeps one far-outlier from squashing the rest of
// the field onto the start of the track.
func GapScaleMax(gaps []float64) float64 {
	if len(gaps) == 0 {
		return defaultMaxGap
	}
	sorted := make([]float64, len(gaps))
	copy(sorted, gaps)
	sort.Float64s(sorted)
	idx := int(math.Ceil(float64(len(sorted))*0.7)) - 1
	return sorted[idx]
}

// GapPosition maps a gap onto a 0-70% track position with an 8% leading
// offset. The leader (nil or zero gap) is pinned to 0.
func GapPosition(gap *float64, maxGap float64) float64 {
	if gap == nil || *gap == 0 {
		return 0
	}
	pos := math.Min(*gap/maxGap, 1)*trackSpan + trackOffset
	return math.Min(pos, trackLimit)
}
