package results

import (
	"sort"
	"strings"

	"github.com/MagicAardvark/race-results-sub000/pkg/model"
)

// ResultEntry is a fully ranked entry: its interim data plus a position in
// each of the three views and its trophy flag.
type ResultEntry struct {
	Entry
	ClassPosition   PositionData `json:"classPosition"`
	IndexedPosition PositionData `json:"indexedPosition"`
	RawPosition     PositionData `json:"rawPosition"`
	IsTrophy        bool         `json:"isTrophy"`
}

// ClassResult is one class (or merged class group) with its ranked entries,
// sorted ascending on indexed time.
type ClassResult struct {
	ClassID   string        `json:"classId"`
	ShortName string        `json:"shortName"`
	LongName  string        `json:"longName"`
	IsGroup   bool          `json:"isGroup"`
	Entries   []ResultEntry `json:"entries"`
}

// ResultSet holds the three parallel views over one snapshot.
type ResultSet struct {
	EventName string        `json:"eventName"`
	Class     []ClassResult `json:"classResults"`
	Indexed   []ResultEntry `json:"indexedResults"`
	Raw       []ResultEntry `json:"rawResults"`
}

// LiveResultsParser turns raw snapshots into ranked result sets. It holds
// no state beyond its configuration, so one parser per event context can
// run concurrently with any other.
type LiveResultsParser struct {
	classes model.ClassConfig
	event   model.EventConfig
}

func NewLiveResultsParser(classes model.ClassConfig, event model.EventConfig) *LiveResultsParser {
	return &LiveResultsParser{classes: classes, event: event}
}

// Parse computes the class, indexed and raw views for one snapshot.
// Entries in classes without configuration are absent from every view.
func (p *LiveResultsParser) Parse(snap model.Snapshot) ResultSet {
	entries := make([]Entry, 0, len(snap.Entries))
	for _, se := range snap.Entries {
		indexValue := 1.0
		if info, ok := p.classes[strings.ToUpper(se.Class)]; ok {
			indexValue = info.IndexValue
		}
		entries = append(entries, BuildEntry(se, p.event, indexValue))
	}

	buckets := groupByClass(entries, p.classes)

	kept := make([]Entry, 0, len(entries))
	for _, bucket := range buckets {
		kept = append(kept, bucket.Entries...)
	}

	indexedSorted, indexedLookup := SortEntriesByTime(kept, ByIndexedTime)
	rawSorted, rawLookup := SortEntriesByTime(kept, ByRawTime)

	out := ResultSet{EventName: snap.EventName}
	var finals []ResultEntry
	for _, bucket := range buckets {
		classSorted, _ := SortEntriesByTime(bucket.Entries, ByIndexedTime)

		cr := ClassResult{
			ClassID:   bucket.ClassID,
			ShortName: bucket.Key,
			LongName:  bucket.Long,
			IsGroup:   bucket.IsGroup,
		}
		for i, entry := range classSorted {
			classPos := GetPositionData(i, classSorted, ByIndexedTime)
			final := ResultEntry{
				Entry:           entry,
				ClassPosition:   classPos,
				IndexedPosition: GetPositionData(indexedLookup[entry.Key], indexedSorted, ByIndexedTime),
				RawPosition:     GetPositionData(rawLookup[entry.Key], rawSorted, ByRawTime),
				IsTrophy:        TrophyStatus(p.event.Trophy, classPos.Position, len(classSorted)),
			}
			cr.Entries = append(cr.Entries, final)
			finals = append(finals, final)
		}
		out.Class = append(out.Class, cr)
	}

	out.Indexed = sortFinals(finals, ByIndexedTime)
	out.Raw = sortFinals(finals, ByRawTime)
	return out
}

func sortFinals(finals []ResultEntry, key TimeKey) []ResultEntry {
	sorted := make([]ResultEntry, len(finals))
	copy(sorted, finals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return timeOrInf(key(sorted[i].Entry)) < timeOrInf(key(sorted[j].Entry))
	})
	return sorted
}
