package render

import (
	"strings"
	"testing"

	"github.com/MagicAardvark/race-results-sub000/pkg/model"
	"github.com/MagicAardvark/race-results-sub000/pkg/results"
)

func fptr(v float64) *float64 { return &v }

func testResultEntry() results.ResultEntry {
	return results.ResultEntry{
		Entry: results.Entry{
			Key:        "STR-52-John Smith",
			Class:      "STR",
			CarNumber:  "52",
			DriverName: "John Smith",
			CarModel:   "2019 Mazda MX-5",
			Segments: []results.Segment{
				{
					Runs: []results.ScoredRun{
						{Status: model.StatusDirty, Time: 52.997, Penalty: 1, RawTotal: fptr(54.997)},
						{Status: model.StatusClean, Time: 53.923, RawTotal: fptr(53.923)},
						{Status: model.StatusDNF},
					},
				},
			},
			IndexedTotal: fptr(44.351),
			RawTotal:     fptr(53.923),
		},
		ClassPosition:   results.PositionData{Position: 1},
		IndexedPosition: results.PositionData{Position: 1},
		RawPosition:     results.PositionData{Position: 1},
	}
}

func TestClassResultsShowsRunsWithPenalties(t *testing.T) {
	rs := results.ResultSet{
		Class: []results.ClassResult{
			{
				ClassID:   "STR",
				ShortName: "STR",
				LongName:  "Street R",
				Entries:   []results.ResultEntry{testResultEntry()},
			},
		},
	}

	var out strings.Builder
	ClassResults(&out, rs)

	rendered := out.String()
	if !strings.Contains(rendered, "52.997+1") {
		t.Fatalf("coned run must carry its penalty, got:\n%s", rendered)
	}
	if !strings.Contains(rendered, "53.923 DNF") {
		t.Fatalf("clean run and DNF must both appear, got:\n%s", rendered)
	}
}

func TestFlatResultsShowsDriverCode(t *testing.T) {
	entries := []results.ResultEntry{testResultEntry()}

	var out strings.Builder
	FlatResults(&out, "PAX Results", entries, true)

	rendered := out.String()
	if !strings.Contains(rendered, "JSM") {
		t.Fatalf("driver code column missing, got:\n%s", rendered)
	}
	if !strings.Contains(rendered, "John Smith") {
		t.Fatalf("full driver name missing, got:\n%s", rendered)
	}
}
