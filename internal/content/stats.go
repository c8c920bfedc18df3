package content

import (
	"sort"
	"time"

	"folio/internal/model"
)

// Stats is an aggregate view of the store, recomputed on every call. The
// store is small and stats calls are rare, so there is no caching.
type Stats struct {
	Total       int                  `json:"total"`
	ByKind      map[model.Kind]int   `json:"by_type"`
	ByStatus    map[model.Status]int `json:"by_status"`
	Featured    int                  `json:"featured"`
	LastUpdated time.Time            `json:"last_updated"`
}

// Stats scans the full store. Pass a kind to narrow to one content type,
// or "" for everything.
func (s *Store) Stats(kind model.Kind) Stats {
	st := Stats{
		ByKind:   make(map[model.Kind]int),
		ByStatus: make(map[model.Status]int),
	}
	for _, item := range s.all() {
		meta := item.Meta()
		if kind != "" && meta.Kind != kind {
			continue
		}
		st.Total++
		st.ByKind[meta.Kind]++
		st.ByStatus[meta.Status]++
		if meta.Featured {
			st.Featured++
		}
		if meta.UpdatedAt.After(st.LastUpdated) {
			st.LastUpdated = meta.UpdatedAt
		}
	}
	return st
}

// TagCount pairs a tag with how many items carry it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TopTags returns the n most used tags, most frequent first, alphabetical
// on ties.
func (s *Store) TopTags(n int) []TagCount {
	counts := make(map[string]int)
	for _, item := range s.all() {
		for _, tag := range item.Meta().Tags {
			counts[tag]++
		}
	}

	out := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
