package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsproof/pkg/checker"
	"github.com/umputun/newsproof/pkg/domain"
	"github.com/umputun/newsproof/pkg/store"
)

const defaultArticlesLimit = 50

// verifyRequest is the payload for POST /api/v1/verify
type verifyRequest struct {
	Claim string `json:"claim"`
}

// voteRequest is the payload for POST /api/v1/articles/{id}/vote
type voteRequest struct {
	Actor     string `json:"actor"`
	Direction string `json:"direction"`
}

// verifyHandler checks a claim against the corpus and returns the verdict
func (s *Server) verifyHandler(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Claim) == "" {
		renderError(w, r, fmt.Errorf("claim is required"), http.StatusBadRequest)
		return
	}

	verdict, err := s.checker.Verify(r.Context(), req.Claim)
	if err != nil {
		if errors.Is(err, checker.ErrEmptyInput) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		lgr.Printf("[ERROR] verification failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, verdict)
}

// ingestHandler triggers an immediate ingestion pass
func (s *Server) ingestHandler(w http.ResponseWriter, r *http.Request) {
	n := s.scheduler.RunNow(r.Context())
	renderJSON(w, r, http.StatusOK, map[string]int{"ingested": n})
}

// voteHandler records a community vote and updates the article trust weight
func (s *Server) voteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Actor == "" {
		renderError(w, r, fmt.Errorf("actor is required"), http.StatusBadRequest)
		return
	}
	direction := domain.VoteDirection(req.Direction)
	if !direction.Valid() {
		renderError(w, r, fmt.Errorf("direction must be up or down"), http.StatusBadRequest)
		return
	}

	// reject votes for unknown articles
	if _, err := s.store.Get(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			renderError(w, r, fmt.Errorf("article not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to load article %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	event := domain.VoteEvent{
		ArticleID: id,
		Actor:     req.Actor,
		Direction: direction,
		Timestamp: time.Now().UTC(),
	}

	if err := s.trust.ApplyVote(event); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.store.RecordVote(ctx, event); err != nil {
		lgr.Printf("[ERROR] failed to persist vote for %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	weight := s.trust.Weight(id)
	if err := s.store.UpdateTrustWeight(ctx, id, weight); err != nil {
		lgr.Printf("[WARN] failed to persist trust weight for %s: %v", id, err)
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"article_id":   id,
		"trust_weight": weight,
	})
}

// articlesHandler lists stored articles, optionally filtered by category
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultArticlesLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			renderError(w, r, fmt.Errorf("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	var articles []domain.Article
	var err error
	if category := r.URL.Query().Get("category"); category != "" {
		articles, err = s.store.QueryByCategory(ctx, domain.Category(category), limit)
	} else {
		articles, err = s.store.ListArticles(ctx, limit)
	}
	if err != nil {
		lgr.Printf("[ERROR] failed to list articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	// keep raw text out of listings, it can be large
	type articleView struct {
		ID          string          `json:"id"`
		SourceName  string          `json:"source_name"`
		URL         string          `json:"url"`
		Title       string          `json:"title"`
		PublishedAt time.Time       `json:"published_at"`
		Category    domain.Category `json:"category"`
		TrustWeight float64         `json:"trust_weight"`
	}

	views := make([]articleView, 0, len(articles))
	for _, a := range articles {
		views = append(views, articleView{
			ID:          a.ID,
			SourceName:  a.SourceName,
			URL:         a.URL,
			Title:       a.Title,
			PublishedAt: a.PublishedAt,
			Category:    a.Category,
			TrustWeight: a.TrustWeight,
		})
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"articles": views,
		"count":    len(views),
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"indexed": s.index.Size(),
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
