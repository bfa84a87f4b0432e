package results

import (
	"math"
	"reflect"
	"testing"

	"github.com/MagicAardvark/race-results-sub000/pkg/model"
)

func testSnapshot() model.Snapshot {
	return model.Snapshot{
		EventName: "Test Event",
		Entries: []model.SnapshotEntry{
			{
				Class: "AS", CarNumber: "11", DriverName: "Jane Doe",
				Runs: [][]model.RawRun{{
					{Time: 54.793, Status: model.StatusClean},
				}},
			},
			{
				Class: "AS", CarNumber: "42", DriverName: "John Smith",
				Runs: [][]model.RawRun{{
					{Time: 52.997, Cones: 1, Status: model.StatusDirty},
					{Time: 53.923, Status: model.StatusClean},
				}},
			},
			{
				// no configuration for this class, must vanish everywhere
				Class: "FUN", CarNumber: "99", DriverName: "Test Driver",
				Runs: [][]model.RawRun{{
					{Time: 40.0, Status: model.StatusClean},
				}},
			},
		},
	}
}

func TestParseEndToEnd(t *testing.T) {
	parser := NewLiveResultsParser(testClassConfig(), testEventConfig())
	rs := parser.Parse(testSnapshot())

	if len(rs.Class) != 1 {
		t.Fatalf("expected 1 class bucket, got %d", len(rs.Class))
	}
	as := rs.Class[0]
	if as.ShortName != "AS" || as.IsGroup {
		t.Fatalf("unexpected bucket %q (group=%v)", as.ShortName, as.IsGroup)
	}
	if len(as.Entries) != 2 {
		t.Fatalf("expected 2 entries in AS, got %d", len(as.Entries))
	}

	winner := as.Entries[0]
	runnerUp := as.Entries[1]
	if winner.DriverName != "John Smith" {
		t.Fatalf("expected John Smith in P1, got %s", winner.DriverName)
	}
	if winner.ClassPosition.ToFirst != nil || winner.ClassPosition.ToNext != nil {
		t.Errorf("class leader gaps must be nil, got %v/%v",
			winner.ClassPosition.ToFirst, winner.ClassPosition.ToNext)
	}
	if runnerUp.ClassPosition.Position != 2 {
		t.Errorf("expected position 2, got %d", runnerUp.ClassPosition.Position)
	}
	// (54.793 - 53.923) * 0.83
	if runnerUp.ClassPosition.ToFirst == nil || math.Abs(*runnerUp.ClassPosition.ToFirst-0.7221) > 1e-9 {
		t.Errorf("expected toFirst 0.7221, got %v", runnerUp.ClassPosition.ToFirst)
	}

	if rs.Indexed[0].DriverName != "John Smith" {
		t.Errorf("expected John Smith leading indexed results, got %s", rs.Indexed[0].DriverName)
	}
	if rs.Raw[0].DriverName != "John Smith" {
		t.Errorf("expected John Smith leading raw results, got %s", rs.Raw[0].DriverName)
	}
}

func TestParseDropsUnknownClassEverywhere(t *testing.T) {
	parser := NewLiveResultsParser(testClassConfig(), testEventConfig())
	rs := parser.Parse(testSnapshot())

	check := func(name string, entries []ResultEntry) {
		for _, entry := range entries {
			if entry.Class == "FUN" {
				t.Errorf("unknown class leaked into %s", name)
			}
		}
	}
	check("indexed results", rs.Indexed)
	check("raw results", rs.Raw)
	for _, cr := range rs.Class {
		check("class results", cr.Entries)
	}
}

func TestParseTrophyUsesClassSize(t *testing.T) {
	cfg := testEventConfig()
	cfg.Trophy = model.TrophyConfig{Mode: model.TrophyPercentage, Value: 50}

	parser := NewLiveResultsParser(testClassConfig(), cfg)
	rs := parser.Parse(testSnapshot())

	as := rs.Class[0]
	if !as.Entries[0].IsTrophy {
		t.Error("P1 of 2 at 50% must trophy")
	}
	if as.Entries[1].IsTrophy {
		t.Error("P2 of 2 at 50% must not trophy")
	}
}

func TestParseIdempotent(t *testing.T) {
	parser := NewLiveResultsParser(testClassConfig(), testEventConfig())
	first := parser.Parse(testSnapshot())
	second := parser.Parse(testSnapshot())
	if !reflect.DeepEqual(first, second) {
		t.Fatal("parsing the same snapshot twice must yield identical results")
	}
}

func TestParseFieldPositionsSpanClasses(t *testing.T) {
	parser := NewLiveResultsParser(testClassConfig(), testEventConfig())
	snap := testSnapshot()
	snap.Entries = append(snap.Entries, model.SnapshotEntry{
		Class: "P1", CarNumber: "7", DriverName: "Pro Driver",
		Runs: [][]model.RawRun{{
			{Time: 50.0, Status: model.StatusClean},
		}},
	})
	rs := parser.Parse(snap)

	// AS runs on a 0.83 index, so their indexed times beat the pro's 50.0
	if rs.Indexed[0].Class != "AS" {
		t.Errorf("expected AS leading indexed view, got %s", rs.Indexed[0].Class)
	}
	if rs.Raw[0].DriverName != "Pro Driver" {
		t.Errorf("expected Pro Driver leading raw view, got %s", rs.Raw[0].DriverName)
	}

	for _, entry := range rs.Indexed {
		if entry.IndexedPosition.Position != indexOf(rs.Indexed, entry.Key)+1 {
			t.Errorf("indexed position mismatch for %s", entry.Key)
		}
	}
}

func indexOf(entries []ResultEntry, key string) int {
	for i, e := range entries {
		if e.Key == key {
			return i
		}
	}
	return -1
}
