// Package render draws result views as terminal tables.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/MagicAardvark/race-results-sub000/pkg/awards"
	"github.com/MagicAardvark/race-results-sub000/pkg/helper"
	"github.com/MagicAardvark/race-results-sub000/pkg/model"
	"github.com/MagicAardvark/race-results-sub000/pkg/rallycross"
	"github.com/MagicAardvark/race-results-sub000/pkg/results"
)

const (
	tableDriver = "Driver"
	trophyMark  = "🏆"
	barWidth    = 14
)

// ClassResults renders one table per class bucket.
func ClassResults(w io.Writer, rs results.ResultSet) {
	for _, cr := range rs.Class {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleRounded)
		t.SetTitle("%s - %s", cr.ShortName, cr.LongName)
		t.AppendHeader(table.Row{"P", tableDriver, "Car", "PAX", "Raw", "To 1st", "Runs", "T"})
		for _, entry := range cr.Entries {
			mark := ""
			if entry.IsTrophy {
				mark = trophyMark
			}
			t.AppendRow(table.Row{
				entry.ClassPosition.Position,
				entry.DriverName,
				entry.CarModel,
				helper.FormatTime(entry.IndexedTotal),
				helper.FormatTime(entry.RawTotal),
				helper.FormatGap(entry.ClassPosition.ToFirst),
				runsSummary(entry),
				mark,
			})
		}
		t.Render()
	}
}

// FlatResults renders a whole-field view (indexed or raw) with a scaled
// gap bar per entry.
func FlatResults(w io.Writer, title string, entries []results.ResultEntry, indexed bool) {
	key := results.ByRawTime
	pos := func(e results.ResultEntry) results.PositionData { return e.RawPosition }
	if indexed {
		key = results.ByIndexedTime
		pos = func(e results.ResultEntry) results.PositionData { return e.IndexedPosition }
	}

	var gaps []float64
	for _, entry := range entries {
		if g := pos(entry).ToFirst; g != nil && *g != 0 {
			gaps = append(gaps, *g)
		}
	}
	maxGap := helper.GapScaleMax(gaps)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"P", "Drv", tableDriver, "Class", "Time", "To 1st", "Gap"})
	for i, entry := range entries {
		t.AppendRow(table.Row{
			i + 1,
			helper.GetDriverCodeName(entry.DriverName),
			entry.DriverName,
			entry.Class,
			helper.FormatTime(key(entry.Entry)),
			helper.FormatGap(pos(entry).ToFirst),
			gapBar(pos(entry).ToFirst, maxGap),
		})
	}
	t.Render()
}

// runsSummary lists every run with its cone count, timing-board style
// ("52.997+1 53.923 DNF").
func runsSummary(entry results.ResultEntry) string {
	var parts []string
	for _, seg := range entry.Segments {
		for _, run := range seg.Runs {
			if run.Status == model.StatusDNF {
				parts = append(parts, "DNF")
				continue
			}
			parts = append(parts, fmt.Sprintf("%.3f%s", run.Time, helper.FormatPenalty(run.Penalty)))
		}
	}
	return strings.Join(parts, " ")
}

// gapBar marks the entry's scaled position along a fixed-width track.
func gapBar(gap *float64, maxGap float64) string {
	position := helper.GapPosition(gap, maxGap)
	marker := int(position / 100 * barWidth)
	if marker >= barWidth {
		marker = barWidth - 1
	}
	return strings.Repeat("·", marker) + "▪" + strings.Repeat("·", barWidth-marker-1)
}

// Rallycross renders one class's rallycross standings.
func Rallycross(w io.Writer, class string, entries []rallycross.Entry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle("Rallycross - %s", class)
	t.AppendHeader(table.Row{"P", tableDriver, "Total", "To 1st", "To Next", "Cones", "DNF"})
	for _, entry := range entries {
		t.AppendRow(table.Row{
			entry.Position,
			entry.DriverName,
			helper.SecondsToMinutes(entry.RunInfo.RallyCrossTime),
			helper.FormatGapValue(entry.RunInfo.RallyCrossToFirst),
			helper.FormatGapValue(entry.RunInfo.RallyCrossToNext),
			entry.RunInfo.ConeCount,
			entry.RunInfo.DNFCount,
		})
	}
	t.Render()
}

// Awards renders the special-award report.
func Awards(w io.Writer, aw awards.SpecialAwards) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle("Special Awards")
	t.AppendHeader(table.Row{"Award", tableDriver, "Car #", "Class"})
	appendWinner := func(label string, winner *awards.Winner) {
		if winner == nil {
			return
		}
		t.AppendRow(table.Row{label, winner.DriverName, winner.CarNumber, winner.Class})
	}
	appendWinner("Cone Killer", aw.ConeKiller)
	appendWinner("Hail Mary", aw.HailMary)
	appendWinner("Consistency", aw.Consistency)
	appendWinner("Speed Demon", aw.SpeedDemon)
	for i := range aw.SqueakyClean {
		appendWinner("Squeaky Clean", &aw.SqueakyClean[i])
	}
	t.Render()
}
