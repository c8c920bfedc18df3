package content

import (
	"strings"

	"folio/internal/model"
)

// Search does a case-insensitive substring match of q against title,
// description, tags and project excerpt, optionally narrowed to one kind
// (empty kind means all). Results come back in store order; limiting is the
// caller's job.
func (s *Store) Search(q string, kind model.Kind) []model.Item {
	needle := strings.ToLower(strings.TrimSpace(q))
	if needle == "" {
		return nil
	}

	var out []model.Item
	for _, item := range s.all() {
		if kind != "" && item.Meta().Kind != kind {
			continue
		}
		if matchesText(item, needle) {
			out = append(out, item)
		}
	}
	return out
}

// GroupedResult is a cross-type search result split into per-kind buckets.
// Total counts matches before the limit was applied.
type GroupedResult struct {
	Projects    []model.Item `json:"projects"`
	Experiences []model.Item `json:"experiences"`
	Skills      []model.Item `json:"skills"`
	Total       int          `json:"total"`
}

// SearchAll searches every kind and groups the hits by type. The limit is
// applied to the flat, store-ordered result before grouping, so at most
// limit items come back across all buckets.
func (s *Store) SearchAll(q string, limit int) GroupedResult {
	flat := s.Search(q, "")
	res := GroupedResult{Total: len(flat)}

	if limit > 0 && len(flat) > limit {
		flat = flat[:limit]
	}
	for _, item := range flat {
		switch item.Meta().Kind {
		case model.KindProject:
			res.Projects = append(res.Projects, item)
		case model.KindExperience:
			res.Experiences = append(res.Experiences, item)
		case model.KindSkill:
			res.Skills = append(res.Skills, item)
		}
	}
	return res
}

// matchesText reports whether the lowercased needle appears in any of the
// item's searchable text fields.
func matchesText(item model.Item, needle string) bool {
	meta := item.Meta()
	if strings.Contains(strings.ToLower(meta.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(meta.Description), needle) {
		return true
	}
	for _, tag := range meta.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	if p, ok := item.(*model.Project); ok {
		if strings.Contains(strings.ToLower(p.Excerpt), needle) {
			return true
		}
	}
	return false
}
