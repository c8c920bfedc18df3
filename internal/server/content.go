package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"folio/internal/content"
	"folio/internal/model"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func (s *Server) handleGetContent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	item, err := s.store.Get(id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"item": item})
}

type updateRequest struct {
	Updates model.Patch `json:"updates"`
	Author  string      `json:"author"`
	Options struct {
		SkipValidation bool `json:"skipValidation"`
		SkipTimestamp  bool `json:"skipTimestamp"`
	} `json:"options"`
}

func (s *Server) handleUpdateContent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	item, err := s.store.Update(id, req.Updates, req.Author, content.UpdateOptions{
		SkipValidation: req.Options.SkipValidation,
		SkipTimestamp:  req.Options.SkipTimestamp,
	})
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	s.logger.Info("Content updated", zap.String("id", id), zap.String("author", req.Author))
	s.writeJSON(w, http.StatusOK, envelope{"item": item})
}

func (s *Server) handleDeleteContent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	author := r.URL.Query().Get("author")

	if err := s.store.Delete(id, author); err != nil {
		s.writeStoreError(w, err)
		return
	}

	s.logger.Info("Content deleted", zap.String("id", id), zap.String("author", author))
	s.writeJSON(w, http.StatusOK, envelope{"message": "Content deleted"})
}

func (s *Server) handleSearchContent(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q := params.Get("q")
	if q == "" {
		s.writeError(w, http.StatusBadRequest, "Query parameter 'q' is required", nil)
		return
	}

	limit := 10
	if raw := params.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	// The store searches without paginating; the limit is applied here.
	results := s.store.Search(q, model.Kind(params.Get("type")))
	total := len(results)
	if len(results) > limit {
		results = results[:limit]
	}

	payload := envelope{"results": results, "total": total}

	if params.Get("includeRelated") == "true" && len(results) > 0 {
		first := results[0].Meta().ID
		related, err := s.store.Related(first, 3)
		if err == nil {
			payload["related"] = related
			payload["related_to"] = first
		}
	}

	s.writeJSON(w, http.StatusOK, payload)
}

type queryRequest struct {
	Query   string `json:"query"`
	Filters struct {
		Type       model.Kind         `json:"type"`
		Status     model.Status       `json:"status"`
		Featured   *bool              `json:"featured"`
		Tags       []string           `json:"tags"`
		Categories []string           `json:"categories"`
		DateRange  *content.DateRange `json:"dateRange"`
	} `json:"filters"`
	Sort       *content.Sort `json:"sort"`
	Pagination struct {
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	} `json:"pagination"`
	IncludeStats bool `json:"includeStats"`
}

func (s *Server) handleQueryContent(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.Query == "" {
		s.writeError(w, http.StatusBadRequest, "Query is required", nil)
		return
	}

	res := s.store.Query(content.Query{
		Search:     req.Query,
		Kind:       req.Filters.Type,
		Status:     req.Filters.Status,
		Featured:   req.Filters.Featured,
		Tags:       req.Filters.Tags,
		Categories: req.Filters.Categories,
		DateRange:  req.Filters.DateRange,
		Sort:       req.Sort,
		Limit:      req.Pagination.Limit,
		Offset:     req.Pagination.Offset,
	})

	payload := envelope{"results": res.Items, "total": res.Total}

	if req.IncludeStats {
		byKind := make(map[model.Kind]int)
		for _, item := range res.Items {
			byKind[item.Meta().Kind]++
		}
		payload["stats"] = envelope{"by_type": byKind}
	}

	s.writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	st := s.store.Stats(model.Kind(params.Get("type")))
	payload := envelope{"stats": st}

	if params.Get("detailed") == "true" {
		payload["top_tags"] = s.store.TopTags(5)
		payload["health"] = envelope{"healthy": true, "items": s.store.Len()}
	}

	s.writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleEnrichContent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	item, err := s.store.Get(id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	project, ok := item.(*model.Project)
	if !ok || project.LiveURL == "" {
		s.writeError(w, http.StatusBadRequest, "Only projects with a live URL can be enriched", nil)
		return
	}

	if err := s.queue.Push(r.Context(), id); err != nil {
		s.logger.Error("Failed to queue enrichment", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "Failed to queue enrichment", nil)
		return
	}

	s.logger.Info("Enrichment queued", zap.String("id", id))
	s.writeJSON(w, http.StatusAccepted, envelope{"message": "Enrichment queued"})
}
