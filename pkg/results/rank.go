package results

import (
	"math"
	"sort"
)

// TimeKey selects which total an entry is ranked on.
type TimeKey func(Entry) *float64

func ByIndexedTime(e Entry) *float64 { return e.IndexedTotal }
func ByRawTime(e Entry) *float64     { return e.RawTotal }

// PositionData is one entry's rank in a view plus its gaps. ToFirst and
// ToNext are nil for the leader; nil marks "you are the reference", which
// is not the same as a real zero-second tie.
type PositionData struct {
	Position int      `json:"position"`
	ToFirst  *float64 `json:"toFirst"`
	ToNext   *float64 `json:"toNext"`
}

// SortEntriesByTime returns the entries sorted ascending on the key, with
// entries that have no time (DNF everywhere) at the end, plus a lookup
// from entry key to sorted index. Ties keep their input order. Duplicate
// entry keys are last-write-wins in the lookup.
func SortEntriesByTime(entries []Entry, key TimeKey) ([]Entry, map[string]int) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return timeOrInf(key(sorted[i])) < timeOrInf(key(sorted[j]))
	})

	lookup := make(map[string]int, len(sorted))
	for i, e := range sorted {
		lookup[e.Key] = i
	}
	return sorted, lookup
}

// GetPositionData computes rank and gaps for the entry at index within a
// sorted view. Gaps are positive when the entry is behind its reference.
func GetPositionData(index int, sorted []Entry, key TimeKey) PositionData {
	pd := PositionData{Position: index + 1}
	if index == 0 {
		return pd
	}
	pd.ToNext = gapBetween(key(sorted[index]), key(sorted[index-1]))
	pd.ToFirst = gapBetween(key(sorted[index]), key(sorted[0]))
	return pd
}

func gapBetween(current, reference *float64) *float64 {
	if current == nil || reference == nil {
		return nil
	}
	gap := *current - *reference
	return &gap
}

func timeOrInf(t *float64) float64 {
	if t == nil {
		return math.Inf(1)
	}
	return *t
}
