package domain

import (
	"sort"
	"time"
)

// Interval is a half-open [Start, End) busy span. Computed per query,
// never persisted.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals share any instant.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// MergeIntervals sorts intervals ascending by start and coalesces
// overlapping or touching spans. Zero-length and inverted inputs are
// dropped.
func MergeIntervals(in []Interval) []Interval {
	ivs := make([]Interval, 0, len(in))
	for _, iv := range in {
		if !iv.End.After(iv.Start) {
			continue
		}
		ivs = append(ivs, Interval{Start: iv.Start.UTC(), End: iv.End.UTC()})
	}
	if len(ivs) == 0 {
		return nil
	}

	sort.Slice(ivs, func(i, j int) bool { return ivs[i].Start.Before(ivs[j].Start) })

	out := make([]Interval, 0, len(ivs))
	cur := ivs[0]
	for _, iv := range ivs[1:] {
		if iv.Start.After(cur.End) {
			out = append(out, cur)
			cur = iv
			continue
		}
		if iv.End.After(cur.End) {
			cur.End = iv.End
		}
	}
	out = append(out, cur)
	return out
}
