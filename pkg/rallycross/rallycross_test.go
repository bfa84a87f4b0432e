package rallycross

import (
	"math"
	"testing"
)

func entryWithRuns(name string, runs ...Run) Entry {
	return Entry{DriverName: name, RunInfo: RunInfo{Runs: runs}}
}

func TestTransformPadsMissingRuns(t *testing.T) {
	entries := Transform([]Entry{
		entryWithRuns("A", Run{Number: 1, Status: "CLEAN", Time: 60.0}),
	}, 4)

	runs := entries[0].RunInfo.Runs
	if len(runs) != 4 {
		t.Fatalf("expected 4 runs after padding, got %d", len(runs))
	}
	for _, run := range runs[1:] {
		if run.Status != "CLEAN" || run.Time != PadTime || run.Cones != 0 {
			t.Errorf("unexpected padded run %+v", run)
		}
	}
	// 60 + 3*100
	if math.Abs(entries[0].RunInfo.RallyCrossTime-360.0) > 1e-9 {
		t.Errorf("expected total 360.0, got %f", entries[0].RunInfo.RallyCrossTime)
	}
}

func TestTransformAppliesFixedPenalties(t *testing.T) {
	entries := Transform([]Entry{
		entryWithRuns("A",
			Run{Number: 1, Status: "DNF", Time: 55.0},
			Run{Number: 2, Status: "DIRTY", Time: 50.0, Cones: 2},
		),
	}, 2)

	// (55 + 10) + (50 + 2*2)
	if math.Abs(entries[0].RunInfo.RallyCrossTime-119.0) > 1e-9 {
		t.Fatalf("expected total 119.0, got %f", entries[0].RunInfo.RallyCrossTime)
	}
}

func TestTransformResortsAndRecomputesGaps(t *testing.T) {
	entries := Transform([]Entry{
		entryWithRuns("slow",
			Run{Number: 1, Status: "CLEAN", Time: 62.0},
			Run{Number: 2, Status: "CLEAN", Time: 62.0},
		),
		entryWithRuns("fast",
			Run{Number: 1, Status: "CLEAN", Time: 60.0},
			Run{Number: 2, Status: "CLEAN", Time: 60.0},
		),
	}, 2)

	if entries[0].DriverName != "fast" {
		t.Fatalf("expected fast to lead, got %s", entries[0].DriverName)
	}
	if entries[0].Position != "1" || entries[1].Position != "2" {
		t.Errorf("unexpected positions %s/%s", entries[0].Position, entries[1].Position)
	}
	// the rallycross leader's gap is zero, not null
	if entries[0].RunInfo.RallyCrossToFirst != 0 || entries[0].RunInfo.RallyCrossToNext != 0 {
		t.Errorf("leader gaps must be zero, got %f/%f",
			entries[0].RunInfo.RallyCrossToFirst, entries[0].RunInfo.RallyCrossToNext)
	}
	if math.Abs(entries[1].RunInfo.RallyCrossToFirst-4.0) > 1e-9 {
		t.Errorf("expected toFirst 4.0, got %f", entries[1].RunInfo.RallyCrossToFirst)
	}
	if math.Abs(entries[1].RunInfo.RallyCrossToNext-4.0) > 1e-9 {
		t.Errorf("expected toNext 4.0, got %f", entries[1].RunInfo.RallyCrossToNext)
	}
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	input := []Entry{
		entryWithRuns("A", Run{Number: 1, Status: "CLEAN", Time: 60.0}),
	}
	Transform(input, 4)
	if len(input[0].RunInfo.Runs) != 1 {
		t.Fatalf("input entry was padded in place: %d runs", len(input[0].RunInfo.Runs))
	}
}
