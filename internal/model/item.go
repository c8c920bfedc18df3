package model

import (
	"time"
)

type Kind string

const (
	KindProject    Kind = "project"
	KindExperience Kind = "experience"
	KindSkill      Kind = "skill"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Core is the envelope shared by every content item. The query engine only
// ever looks at these fields; variants add their own payload on top.
type Core struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Category    string    `json:"category,omitempty"`
	Status      Status    `json:"status"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	UpdatedBy   string    `json:"updated_by,omitempty"`
}

// Meta returns the shared envelope. Embedding Core gives every variant
// this method, which is what makes it an Item.
func (c *Core) Meta() *Core { return c }

// Item is a single stored content entity. Concrete types are Project,
// Experience and Skill.
type Item interface {
	Meta() *Core
	// Validate returns field-level problems, empty when the item is valid.
	Validate() []string
	// Clone returns a deep enough copy that callers can hold onto results
	// without aliasing store state.
	Clone() Item
	// Apply merges the non-nil fields of a patch into the item.
	Apply(p Patch)
}

// Project is a portfolio project or case study.
type Project struct {
	Core
	Stack   []string `json:"stack,omitempty"`
	RepoURL string   `json:"repo_url,omitempty"`
	LiveURL string   `json:"live_url,omitempty"`
	Excerpt string   `json:"excerpt,omitempty"`
}

func (p *Project) Validate() []string {
	var errs []string
	if p.Title == "" {
		errs = append(errs, "title is required")
	}
	return errs
}

func (p *Project) Clone() Item {
	cp := *p
	cp.Tags = append([]string(nil), p.Tags...)
	cp.Stack = append([]string(nil), p.Stack...)
	return &cp
}

func (p *Project) Apply(patch Patch) {
	p.Core.apply(patch)
	if patch.Excerpt != nil {
		p.Excerpt = *patch.Excerpt
	}
	if patch.Stack != nil {
		p.Stack = append([]string(nil), patch.Stack...)
	}
	if patch.LiveURL != nil {
		p.LiveURL = *patch.LiveURL
	}
	if patch.RepoURL != nil {
		p.RepoURL = *patch.RepoURL
	}
}

// Experience is a work-history entry.
type Experience struct {
	Core
	Company  string     `json:"company"`
	Role     string     `json:"role"`
	Location string     `json:"location,omitempty"`
	Start    time.Time  `json:"start"`
	End      *time.Time `json:"end,omitempty"` // nil means current position
}

func (e *Experience) Validate() []string {
	var errs []string
	if e.Title == "" {
		errs = append(errs, "title is required")
	}
	if e.Company == "" {
		errs = append(errs, "company is required")
	}
	if e.Role == "" {
		errs = append(errs, "role is required")
	}
	return errs
}

func (e *Experience) Clone() Item {
	cp := *e
	cp.Tags = append([]string(nil), e.Tags...)
	if e.End != nil {
		end := *e.End
		cp.End = &end
	}
	return &cp
}

func (e *Experience) Apply(patch Patch) {
	e.Core.apply(patch)
}

// Skill is a single skill with a proficiency level.
type Skill struct {
	Core
	Level string `json:"level,omitempty"`
	Years int    `json:"years,omitempty"`
}

func (s *Skill) Validate() []string {
	var errs []string
	if s.Title == "" {
		errs = append(errs, "title is required")
	}
	if s.Level == "" {
		errs = append(errs, "level is required")
	}
	return errs
}

func (s *Skill) Clone() Item {
	cp := *s
	cp.Tags = append([]string(nil), s.Tags...)
	return &cp
}

func (s *Skill) Apply(patch Patch) {
	s.Core.apply(patch)
}

// Patch carries a partial update. Nil pointers (and a nil Tags slice) mean
// "leave as is"; variant-specific fields are ignored by other variants.
type Patch struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Status      *Status  `json:"status,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`

	// Project-only fields.
	Excerpt *string  `json:"excerpt,omitempty"`
	Stack   []string `json:"stack,omitempty"`
	LiveURL *string  `json:"live_url,omitempty"`
	RepoURL *string  `json:"repo_url,omitempty"`
}

func (c *Core) apply(p Patch) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Tags != nil {
		c.Tags = append([]string(nil), p.Tags...)
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Featured != nil {
		c.Featured = *p.Featured
	}
}
