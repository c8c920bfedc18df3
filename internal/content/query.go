package content

import (
	"sort"
	"strings"
	"time"

	"folio/internal/model"
)

// DateRange bounds created_at. Zero start or end means unbounded on that
// side.
type DateRange struct {
	Start time.Time `json:"start,omitempty"`
	End   time.Time `json:"end,omitempty"`
}

// Sort picks a field ("title", "created_at", "updated_at") and a direction
// ("asc" or "desc").
type Sort struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// Query is the structured request for the general query path. Filters are
// conjunctive across dimensions; within Tags and Categories any single match
// suffices.
type Query struct {
	Search     string       `json:"search,omitempty"`
	Kind       model.Kind   `json:"type,omitempty"`
	Status     model.Status `json:"status,omitempty"`
	Featured   *bool        `json:"featured,omitempty"`
	Tags       []string     `json:"tags,omitempty"`
	Categories []string     `json:"categories,omitempty"`
	DateRange  *DateRange   `json:"dateRange,omitempty"`
	Limit      int          `json:"limit,omitempty"`
	Offset     int          `json:"offset,omitempty"`
	Sort       *Sort        `json:"sort,omitempty"`
}

// QueryResult carries the page of matches plus the pre-pagination total, so
// callers can render "X of Y results".
type QueryResult struct {
	Items []model.Item `json:"items"`
	Total int          `json:"total"`
}

// Query filters, sorts and paginates the store. Filter order: type, status,
// featured, tags, categories, date range, free-text search.
func (s *Store) Query(q Query) QueryResult {
	var matched []model.Item
	for _, item := range s.all() {
		if matches(item, q) {
			matched = append(matched, item)
		}
	}

	if q.Sort != nil {
		sortItems(matched, *q.Sort)
	}

	total := len(matched)

	if q.Offset > 0 {
		if q.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[q.Offset:]
		}
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	return QueryResult{Items: matched, Total: total}
}

func matches(item model.Item, q Query) bool {
	meta := item.Meta()

	if q.Kind != "" && meta.Kind != q.Kind {
		return false
	}
	if q.Status != "" && meta.Status != q.Status {
		return false
	}
	if q.Featured != nil && meta.Featured != *q.Featured {
		return false
	}
	if len(q.Tags) > 0 && !anyOverlap(meta.Tags, q.Tags) {
		return false
	}
	if len(q.Categories) > 0 && !containsFold(q.Categories, meta.Category) {
		return false
	}
	if q.DateRange != nil {
		if !q.DateRange.Start.IsZero() && meta.CreatedAt.Before(q.DateRange.Start) {
			return false
		}
		if !q.DateRange.End.IsZero() && meta.CreatedAt.After(q.DateRange.End) {
			return false
		}
	}
	if q.Search != "" && !matchesText(item, strings.ToLower(q.Search)) {
		return false
	}
	return true
}

// anyOverlap reports whether the two tag sets share at least one element,
// case-insensitively.
func anyOverlap(have, want []string) bool {
	for _, w := range want {
		if containsFold(have, w) {
			return true
		}
	}
	return false
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

func sortItems(items []model.Item, by Sort) {
	desc := strings.EqualFold(by.Direction, "desc")

	less := func(a, b *model.Core) bool { return false }
	switch by.Field {
	case "title":
		less = func(a, b *model.Core) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case "created_at", "date":
		less = func(a, b *model.Core) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "updated_at":
		less = func(a, b *model.Core) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	}

	// SliceStable keeps store order on ties.
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Meta(), items[j].Meta()
		if desc {
			return less(b, a)
		}
		return less(a, b)
	})
}
