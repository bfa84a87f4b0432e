package results

import (
	"github.com/MagicAardvark/race-results-sub000/pkg/model"
)

// classBucket is one class (or merged class group) before ranking.
type classBucket struct {
	Key     string
	ClassID string
	Long    string
	IsGroup bool
	Entries []Entry
}

// groupByClass partitions entries into class buckets. Classes sharing a
// group id merge into one bucket under the group short name. Entries whose
// class has no configuration are dropped: live feeds routinely carry test
// or novelty classes that are not part of the event.
// Bucket metadata comes from the first entry seen for that bucket.
func groupByClass(entries []Entry, classes model.ClassConfig) []classBucket {
	var order []string
	buckets := map[string]*classBucket{}

	for _, entry := range entries {
		info, ok := classes[entry.Class]
		if !ok {
			continue
		}

		key := info.ShortName
		isGroup := false
		if info.ClassGroupID != nil {
			key = info.GroupShortName
			isGroup = true
		}

		bucket, ok := buckets[key]
		if !ok {
			long := info.LongName
			if isGroup {
				long = info.GroupLongName
			}
			bucket = &classBucket{
				Key:     key,
				ClassID: info.ClassID,
				Long:    long,
				IsGroup: isGroup,
			}
			buckets[key] = bucket
			order = append(order, key)
		}
		bucket.Entries = append(bucket.Entries, entry)
	}

	out := make([]classBucket, 0, len(order))
	for _, key := range order {
		out = append(out, *buckets[key])
	}
	return out
}
