package content

import (
	"testing"
	"time"

	"folio/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureStore builds a small store with known order and fields.
func fixtureStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()

	day := func(d int) time.Time {
		return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
	}

	items := []model.Item{
		&model.Project{Core: model.Core{
			ID: "p1", Kind: model.KindProject, Title: "AI Dashboard",
			Tags: []string{"ai", "ml"}, Category: "web",
			Status: model.StatusPublished, Featured: true,
			CreatedAt: day(1), UpdatedAt: day(1),
		}},
		&model.Project{Core: model.Core{
			ID: "p2", Kind: model.KindProject, Title: "Shop Site",
			Tags: []string{"ecommerce"}, Category: "web",
			Status: model.StatusPublished,
			CreatedAt: day(2), UpdatedAt: day(2),
		}},
		&model.Project{Core: model.Core{
			ID: "p3", Kind: model.KindProject, Title: "Old Tool",
			Tags: []string{"infra"}, Category: "tooling",
			Status: model.StatusArchived,
			CreatedAt: day(3), UpdatedAt: day(3),
		}},
		&model.Skill{
			Core: model.Core{
				ID: "s1", Kind: model.KindSkill, Title: "AI Engineering",
				Tags: []string{"ai"}, Category: "domain",
				Status: model.StatusPublished,
				CreatedAt: day(4), UpdatedAt: day(4),
			},
			Level: "advanced",
		},
	}
	for _, item := range items {
		require.NoError(t, s.Put(item))
	}
	return s
}

func ids(items []model.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Meta().ID
	}
	return out
}

func TestQuery_TagAnyMatch(t *testing.T) {
	s := fixtureStore(t)

	res := s.Query(Query{Tags: []string{"ai"}})
	assert.Equal(t, []string{"p1", "s1"}, ids(res.Items))
	assert.Equal(t, 2, res.Total)

	// Any overlap within the tag set is enough.
	res = s.Query(Query{Tags: []string{"ecommerce", "infra"}})
	assert.Equal(t, []string{"p2", "p3"}, ids(res.Items))
}

func TestQuery_FiltersAreConjunctive(t *testing.T) {
	s := fixtureStore(t)

	res := s.Query(Query{
		Kind:   model.KindProject,
		Status: model.StatusPublished,
		Tags:   []string{"ai", "ecommerce"},
	})

	// Every scalar filter must hold on every result.
	for _, item := range res.Items {
		meta := item.Meta()
		assert.Equal(t, model.KindProject, meta.Kind)
		assert.Equal(t, model.StatusPublished, meta.Status)
	}
	assert.Equal(t, []string{"p1", "p2"}, ids(res.Items))

	featured := true
	res = s.Query(Query{Kind: model.KindProject, Featured: &featured})
	assert.Equal(t, []string{"p1"}, ids(res.Items))
}

func TestQuery_CategoryAndDateRange(t *testing.T) {
	s := fixtureStore(t)

	res := s.Query(Query{Categories: []string{"tooling", "domain"}})
	assert.Equal(t, []string{"p3", "s1"}, ids(res.Items))

	res = s.Query(Query{DateRange: &DateRange{
		Start: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC),
	}})
	assert.Equal(t, []string{"p2", "p3"}, ids(res.Items))
}

func TestQuery_PaginationInvariant(t *testing.T) {
	s := fixtureStore(t)

	res := s.Query(Query{Limit: 2})
	assert.LessOrEqual(t, len(res.Items), 2)
	assert.Equal(t, 4, res.Total, "total counts matches before pagination")
	assert.Equal(t, []string{"p1", "p2"}, ids(res.Items))

	res = s.Query(Query{Limit: 2, Offset: 2})
	assert.Equal(t, []string{"p3", "s1"}, ids(res.Items))
	assert.Equal(t, 4, res.Total)

	// Offset past the end yields an empty page, total unchanged.
	res = s.Query(Query{Offset: 99})
	assert.Empty(t, res.Items)
	assert.Equal(t, 4, res.Total)
}

func TestQuery_SortStable(t *testing.T) {
	s := NewStore()
	same := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	for _, id := range []string{"a", "b", "c"} {
		p := proj(id, "Same Title")
		p.CreatedAt = same
		require.NoError(t, s.Put(p))
	}

	// Equal sort keys keep store order in both directions.
	res := s.Query(Query{Sort: &Sort{Field: "created_at", Direction: "asc"}})
	assert.Equal(t, []string{"a", "b", "c"}, ids(res.Items))

	res = s.Query(Query{Sort: &Sort{Field: "created_at", Direction: "desc"}})
	assert.Equal(t, []string{"a", "b", "c"}, ids(res.Items))
}

func TestQuery_SortByTitle(t *testing.T) {
	s := fixtureStore(t)

	res := s.Query(Query{Sort: &Sort{Field: "title", Direction: "asc"}})
	assert.Equal(t, []string{"p1", "s1", "p3", "p2"}, ids(res.Items))

	res = s.Query(Query{Sort: &Sort{Field: "title", Direction: "desc"}})
	assert.Equal(t, []string{"p2", "p3", "s1", "p1"}, ids(res.Items))
}

func TestSearch_CaseInsensitive(t *testing.T) {
	s := fixtureStore(t)

	lower := s.Search("ai", "")
	upper := s.Search("AI", "")
	assert.Equal(t, ids(lower), ids(upper))
	assert.Equal(t, []string{"p1", "s1"}, ids(lower))

	// Narrowed to a single kind.
	assert.Equal(t, []string{"p1"}, ids(s.Search("ai", model.KindProject)))

	// Search matches tags too.
	assert.Equal(t, []string{"p2"}, ids(s.Search("ecommerce", "")))
}

func TestSearchAll_GroupsByKindAfterLimit(t *testing.T) {
	s := fixtureStore(t)

	res := s.SearchAll("ai", 10)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, []string{"p1"}, ids(res.Projects))
	assert.Equal(t, []string{"s1"}, ids(res.Skills))
	assert.Empty(t, res.Experiences)

	// The limit applies to the flat result before grouping, so a limit of 1
	// leaves only the first hit in store order.
	res = s.SearchAll("ai", 1)
	assert.Equal(t, 2, res.Total, "total still counts all matches")
	assert.Equal(t, []string{"p1"}, ids(res.Projects))
	assert.Empty(t, res.Skills)
}

func TestRelated_RanksByOverlap(t *testing.T) {
	s := fixtureStore(t)

	// p1 has tags [ai ml] and category web: s1 shares "ai" (1 point), p2
	// shares category web (1 point), so ties break by store order.
	related, err := s.Related("p1", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "s1"}, ids(related))

	// Count truncates the ranking.
	related, err = s.Related("p1", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, ids(related))

	_, err = s.Related("ghost", 3)
	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, KindNotFound, opErr.Kind)
}

func TestStats_CountsPerKind(t *testing.T) {
	s := fixtureStore(t)

	st := s.Stats("")
	assert.Equal(t, 4, st.Total)
	assert.Equal(t, 3, st.ByKind[model.KindProject])
	assert.Equal(t, 1, st.ByKind[model.KindSkill])
	assert.Equal(t, 1, st.Featured)
	assert.Equal(t, 3, st.ByStatus[model.StatusPublished])

	st = s.Stats(model.KindSkill)
	assert.Equal(t, 1, st.Total)
	assert.Equal(t, 0, st.ByKind[model.KindProject])
}

func TestTopTags(t *testing.T) {
	s := fixtureStore(t)

	tags := s.TopTags(2)
	require.Len(t, tags, 2)
	assert.Equal(t, TagCount{Tag: "ai", Count: 2}, tags[0])
}

// TestQuery_ExampleScenario walks the end-to-end example: tag query, search,
// update, then delete.
func TestQuery_ExampleScenario(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Put(proj("p1", "AI Dashboard", "ai", "ml")))
	require.NoError(t, s.Put(proj("p2", "Shop Site", "ecommerce")))

	res := s.Query(Query{Tags: []string{"ai"}})
	assert.Equal(t, []string{"p1"}, ids(res.Items))
	assert.Equal(t, 1, res.Total)

	assert.Equal(t, []string{"p2"}, ids(s.Search("shop", "")))

	title := "AI Dashboard v2"
	_, err := s.Update("p1", model.Patch{Title: &title}, "tester", UpdateOptions{})
	require.NoError(t, err)
	got, err := s.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, "AI Dashboard v2", got.Meta().Title)

	require.NoError(t, s.Delete("p2", "tester"))
	res = s.Query(Query{})
	assert.Equal(t, 1, res.Total)
}
