package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariants_Validate(t *testing.T) {
	p := &Project{Core: Core{ID: "p", Kind: KindProject}}
	assert.Contains(t, p.Validate(), "title is required")
	p.Title = "Thing"
	assert.Empty(t, p.Validate())

	e := &Experience{Core: Core{ID: "e", Kind: KindExperience, Title: "Job"}}
	errs := e.Validate()
	assert.Contains(t, errs, "company is required")
	assert.Contains(t, errs, "role is required")

	sk := &Skill{Core: Core{ID: "s", Kind: KindSkill, Title: "Go"}}
	assert.Contains(t, sk.Validate(), "level is required")
}

func TestPatch_Apply_OnlyNonNilFields(t *testing.T) {
	p := &Project{
		Core: Core{
			ID: "p", Kind: KindProject, Title: "Old",
			Description: "desc", Tags: []string{"a"},
			Featured: true,
		},
		Excerpt: "old excerpt",
	}

	title := "New"
	featured := false
	p.Apply(Patch{Title: &title, Featured: &featured, Tags: []string{"b", "c"}})

	assert.Equal(t, "New", p.Title)
	assert.False(t, p.Featured)
	assert.Equal(t, []string{"b", "c"}, p.Tags)
	// Untouched fields keep their values.
	assert.Equal(t, "desc", p.Description)
	assert.Equal(t, "old excerpt", p.Excerpt)

	// Project-only fields are ignored by other variants.
	excerpt := "nope"
	e := &Experience{Core: Core{ID: "e", Kind: KindExperience, Title: "Job"}}
	e.Apply(Patch{Excerpt: &excerpt})
	assert.Equal(t, "Job", e.Title)
}

func TestClone_DoesNotAliasSlices(t *testing.T) {
	p := &Project{
		Core:  Core{ID: "p", Kind: KindProject, Title: "Thing", Tags: []string{"a"}},
		Stack: []string{"Go"},
	}

	clone := p.Clone().(*Project)
	clone.Tags[0] = "mutated"
	clone.Stack[0] = "Rust"

	assert.Equal(t, []string{"a"}, p.Tags)
	assert.Equal(t, []string{"Go"}, p.Stack)
}

func TestNewSubmission_Defaults(t *testing.T) {
	sub := NewSubmission("Ada", "ada@example.com", "Hi", "body")

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", sub.ID.String())
	assert.Equal(t, SubmissionReceived, sub.Status)
	assert.WithinDuration(t, time.Now(), sub.ReceivedAt, time.Minute)
	require.Empty(t, sub.Validate())
}

func TestSubmission_Validate(t *testing.T) {
	sub := NewSubmission("", "nope", "", "")
	errs := sub.Validate()

	assert.Contains(t, errs, "name is required")
	assert.Contains(t, errs, "email is not valid")
	assert.Contains(t, errs, "message is required")
}
