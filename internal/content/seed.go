package content

import (
	"fmt"
	"time"

	"folio/internal/model"
)

// LoadSeed fills an empty store with the static site content. Calling it
// again is a no-op. The seed set is compiled in; a bad entry is a packaging
// error and aborts startup.
func (s *Store) LoadSeed() {
	s.mu.Lock()
	if s.seeded {
		s.mu.Unlock()
		return
	}
	s.seeded = true
	s.mu.Unlock()

	for _, item := range seedItems() {
		if errs := item.Validate(); len(errs) > 0 {
			panic(fmt.Sprintf("seed item %q invalid: %v", item.Meta().ID, errs))
		}
		if err := s.Put(item); err != nil {
			panic(fmt.Sprintf("seed item %q: %v", item.Meta().ID, err))
		}
	}
}

func seedItems() []model.Item {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return []model.Item{
		&model.Project{
			Core: model.Core{
				ID:          "proj-insight",
				Kind:        model.KindProject,
				Title:       "Insight Dashboard",
				Description: "Realtime analytics dashboard with anomaly detection and ML-backed forecasting.",
				Tags:        []string{"ai", "ml", "analytics"},
				Category:    "web",
				Status:      model.StatusPublished,
				Featured:    true,
				CreatedAt:   day(2023, time.March, 12),
				UpdatedAt:   day(2023, time.March, 12),
			},
			Stack:   []string{"Go", "PostgreSQL", "React"},
			RepoURL: "https://github.com/example/insight",
			LiveURL: "https://insight.example.com",
			Excerpt: "Streaming metrics, anomaly alerts and forecasts in one view.",
		},
		&model.Project{
			Core: model.Core{
				ID:          "proj-storefront",
				Kind:        model.KindProject,
				Title:       "Storefront Platform",
				Description: "Headless e-commerce storefront with cart, checkout and inventory sync.",
				Tags:        []string{"ecommerce", "api"},
				Category:    "web",
				Status:      model.StatusPublished,
				Featured:    true,
				CreatedAt:   day(2022, time.September, 2),
				UpdatedAt:   day(2022, time.September, 2),
			},
			Stack:   []string{"Go", "Redis", "Stripe"},
			LiveURL: "https://shop.example.com",
		},
		&model.Project{
			Core: model.Core{
				ID:          "proj-relay",
				Kind:        model.KindProject,
				Title:       "Relay Notification Service",
				Description: "Multi-channel notification fan-out with retries and delivery tracking.",
				Tags:        []string{"messaging", "api", "infra"},
				Category:    "backend",
				Status:      model.StatusPublished,
				CreatedAt:   day(2023, time.November, 20),
				UpdatedAt:   day(2023, time.November, 20),
			},
			Stack: []string{"Go", "Redis"},
		},
		&model.Project{
			Core: model.Core{
				ID:          "proj-palette",
				Kind:        model.KindProject,
				Title:       "Palette Studio",
				Description: "Color palette generator with ML-assisted harmony suggestions.",
				Tags:        []string{"ai", "design"},
				Category:    "tooling",
				Status:      model.StatusDraft,
				CreatedAt:   day(2024, time.February, 5),
				UpdatedAt:   day(2024, time.February, 5),
			},
			Stack: []string{"Go", "WASM"},
		},
		&model.Project{
			Core: model.Core{
				ID:          "proj-archive",
				Kind:        model.KindProject,
				Title:       "Personal Archive",
				Description: "Self-hosted bookmarking and article archiving tool.",
				Tags:        []string{"infra", "storage"},
				Category:    "tooling",
				Status:      model.StatusArchived,
				CreatedAt:   day(2021, time.June, 30),
				UpdatedAt:   day(2021, time.June, 30),
			},
			Stack: []string{"Go", "BadgerDB"},
		},
		&model.Experience{
			Core: model.Core{
				ID:          "exp-acme",
				Kind:        model.KindExperience,
				Title:       "Senior Backend Engineer at Acme",
				Description: "Led the platform team building payment and billing services.",
				Tags:        []string{"go", "payments", "leadership"},
				Category:    "backend",
				Status:      model.StatusPublished,
				Featured:    true,
				CreatedAt:   day(2022, time.January, 10),
				UpdatedAt:   day(2022, time.January, 10),
			},
			Company: "Acme Corp",
			Role:    "Senior Backend Engineer",
			Start:   day(2022, time.January, 10),
		},
		&model.Experience{
			Core: model.Core{
				ID:          "exp-nimbus",
				Kind:        model.KindExperience,
				Title:       "Platform Engineer at Nimbus",
				Description: "Built the internal deployment platform and observability stack.",
				Tags:        []string{"go", "infra", "kubernetes"},
				Category:    "infrastructure",
				Status:      model.StatusPublished,
				CreatedAt:   day(2019, time.May, 1),
				UpdatedAt:   day(2019, time.May, 1),
			},
			Company:  "Nimbus Cloud",
			Role:     "Platform Engineer",
			Location: "Berlin",
			Start:    day(2019, time.May, 1),
			End:      timePtr(day(2021, time.December, 31)),
		},
		&model.Experience{
			Core: model.Core{
				ID:          "exp-freelance",
				Kind:        model.KindExperience,
				Title:       "Freelance Web Developer",
				Description: "Delivered marketing sites and shops for small businesses.",
				Tags:        []string{"web", "ecommerce"},
				Category:    "web",
				Status:      model.StatusPublished,
				CreatedAt:   day(2017, time.March, 1),
				UpdatedAt:   day(2017, time.March, 1),
			},
			Company: "Self-employed",
			Role:    "Web Developer",
			Start:   day(2017, time.March, 1),
			End:     timePtr(day(2019, time.April, 30)),
		},
		&model.Skill{
			Core: model.Core{
				ID:        "skill-go",
				Kind:      model.KindSkill,
				Title:     "Go",
				Tags:      []string{"go", "backend"},
				Category:  "language",
				Status:    model.StatusPublished,
				Featured:  true,
				CreatedAt: day(2020, time.January, 1),
				UpdatedAt: day(2020, time.January, 1),
			},
			Level: "expert",
			Years: 6,
		},
		&model.Skill{
			Core: model.Core{
				ID:        "skill-ml",
				Kind:      model.KindSkill,
				Title:     "Machine Learning",
				Tags:      []string{"ai", "ml"},
				Category:  "domain",
				Status:    model.StatusPublished,
				CreatedAt: day(2021, time.August, 15),
				UpdatedAt: day(2021, time.August, 15),
			},
			Level: "intermediate",
			Years: 3,
		},
		&model.Skill{
			Core: model.Core{
				ID:        "skill-redis",
				Kind:      model.KindSkill,
				Title:     "Redis",
				Tags:      []string{"redis", "infra", "storage"},
				Category:  "database",
				Status:    model.StatusPublished,
				CreatedAt: day(2020, time.October, 3),
				UpdatedAt: day(2020, time.October, 3),
			},
			Level: "advanced",
			Years: 4,
		},
		&model.Skill{
			Core: model.Core{
				ID:        "skill-k8s",
				Kind:      model.KindSkill,
				Title:     "Kubernetes",
				Tags:      []string{"kubernetes", "infra"},
				Category:  "platform",
				Status:    model.StatusDraft,
				CreatedAt: day(2022, time.April, 18),
				UpdatedAt: day(2022, time.April, 18),
			},
			Level: "intermediate",
			Years: 2,
		},
	}
}

func timePtr(t time.Time) *time.Time { return &t }
