package content

import (
	"sort"

	"folio/internal/model"
)

// Related returns up to count items ranked by overlap with the source item:
// one point per shared tag plus one for a matching category. Zero-score
// items and the source itself are excluded; ties keep store order.
func (s *Store) Related(id string, count int) ([]model.Item, error) {
	source, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	src := source.Meta()

	type scored struct {
		item  model.Item
		score int
	}
	var candidates []scored

	for _, item := range s.all() {
		meta := item.Meta()
		if meta.ID == id {
			continue
		}
		score := 0
		for _, tag := range meta.Tags {
			if containsFold(src.Tags, tag) {
				score++
			}
		}
		if src.Category != "" && meta.Category != "" && src.Category == meta.Category {
			score++
		}
		if score > 0 {
			candidates = append(candidates, scored{item: item, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if count > 0 && len(candidates) > count {
		candidates = candidates[:count]
	}
	out := make([]model.Item, len(candidates))
	for i, c := range candidates {
		out[i] = c.item
	}
	return out, nil
}
