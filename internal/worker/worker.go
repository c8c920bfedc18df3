// Package worker consumes the enrichment queue: it scrapes a project's live
// URL and refreshes the stored excerpt from what the page actually says.
package worker

import (
	"context"
	"strings"
	"time"

	"folio/internal/content"
	"folio/internal/model"
	"folio/internal/queue"

	"github.com/go-shiori/go-readability"
	"go.uber.org/zap"
)

// Scraper defines the interface for downloading web pages.
// This allows us to mock the "Download" step in tests.
type Scraper interface {
	Scrape(url string, timeout time.Duration) (*readability.Article, error)
}

// DefaultScraper is the real implementation that uses the internet
type DefaultScraper struct{}

func (s *DefaultScraper) Scrape(url string, timeout time.Duration) (*readability.Article, error) {
	art, err := readability.FromURL(url, timeout)
	return &art, err
}

type Worker struct {
	store   *content.Store
	queue   *queue.Queue
	logger  *zap.Logger
	scraper Scraper
	timeout time.Duration
}

// NewWorker initializes the worker with the DefaultScraper.
func NewWorker(store *content.Store, q *queue.Queue, logger *zap.Logger, timeout time.Duration) *Worker {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Worker{
		store:   store,
		queue:   q,
		logger:  logger,
		scraper: &DefaultScraper{},
		timeout: timeout,
	}
}

// Start runs the worker loop until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Enrichment worker started. Waiting for jobs...")

	for {
		// Wait for job (blocking call to Redis)
		id, err := w.queue.Pop(ctx)
		if err != nil {
			if ctx.Err() != nil {
				w.logger.Info("Worker shutting down")
				return
			}
			w.logger.Error("Queue error", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		w.processJob(id)
	}
}

func (w *Worker) processJob(id string) {
	logger := w.logger.With(zap.String("content_id", id))
	logger.Info("Enrichment started")

	item, err := w.store.Get(id)
	if err != nil {
		logger.Error("Job failed: content not found", zap.Error(err))
		return
	}

	project, ok := item.(*model.Project)
	if !ok {
		logger.Warn("Job skipped: only projects can be enriched",
			zap.String("type", string(item.Meta().Kind)))
		return
	}
	if project.LiveURL == "" {
		logger.Warn("Job skipped: project has no live URL")
		return
	}

	logger.Info("Downloading", zap.String("url", project.LiveURL))

	page, err := w.scraper.Scrape(project.LiveURL, w.timeout)
	if err != nil {
		// Enrichment is best effort: a dead page leaves the item as is.
		logger.Error("Scraping failed", zap.Error(err))
		return
	}

	patch := model.Patch{}
	if excerpt := strings.TrimSpace(page.Excerpt); excerpt != "" {
		patch.Excerpt = &excerpt
	}
	if project.Title == "" && page.Title != "" {
		patch.Title = &page.Title
	}
	if patch.Excerpt == nil && patch.Title == nil {
		logger.Warn("Page had nothing usable")
		return
	}

	if _, err := w.store.Update(id, patch, "enrich-worker", content.UpdateOptions{}); err != nil {
		logger.Error("Failed to save enrichment", zap.Error(err))
		return
	}

	logger.Info("Enrichment complete", zap.String("title", project.Title))
}
