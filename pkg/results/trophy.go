package results

import (
	"math"

	"github.com/MagicAardvark/race-results-sub000/pkg/model"
)

// TrophyStatus decides whether a class position earns a trophy. Percentage
// mode rounds the trophy count up; ties at the boundary get no special
// treatment. Unknown modes never award.
func TrophyStatus(cfg model.TrophyConfig, position, totalEntries int) bool {
	switch cfg.Mode {
	case model.TrophyTopN:
		return float64(position) <= cfg.Value
	case model.TrophyPercentage:
		count := math.Ceil(cfg.Value / 100 * float64(totalEntries))
		return float64(position) <= count
	default:
		return false
	}
}
