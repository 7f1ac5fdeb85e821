// Package index maintains an in-memory vector index over article embeddings.
// Embeddings are computed once per article and cached; recomputation happens
// only when the normalized text changes. Inserts are incremental: a new
// article becomes queryable as soon as its upsert returns. Queries see a
// point-in-time snapshot and never observe a partially written entry.
package index

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsproof/pkg/domain"
	"github.com/umputun/newsproof/pkg/embed"
)

// Result is a single similarity hit: raw cosine similarity in [-1, 1]
type Result struct {
	ArticleID   string
	Similarity  float64
	PublishedAt time.Time
}

// entry is an indexed article, vector stored L2-normalized
type entry struct {
	vector      []float32
	contentHash string
	publishedAt time.Time
}

// Index is a concurrent in-memory vector index
type Index struct {
	embedder embed.Embedder

	mu      sync.RWMutex
	entries map[string]entry
}

// New creates an empty index backed by the given embedder
func New(embedder embed.Embedder) *Index {
	return &Index{
		embedder: embedder,
		entries:  make(map[string]entry),
	}
}

// Upsert indexes an article, computing its embedding when missing or stale.
// Re-inserting an unchanged article is a no-op. On success the computed
// embedding is written back to the article. The embedding is computed outside
// the lock, so concurrent queries keep running during model calls.
func (idx *Index) Upsert(ctx context.Context, article *domain.Article) error {
	if article.ID == "" {
		return fmt.Errorf("article has no id")
	}

	hash := domain.ContentHash(article.NormalizedText)

	idx.mu.RLock()
	existing, ok := idx.entries[article.ID]
	idx.mu.RUnlock()

	if ok && existing.contentHash == hash {
		return nil // unchanged, cached embedding stays
	}

	vec := article.Embedding
	if vec == nil || (ok && existing.contentHash != hash) {
		computed, err := idx.embedder.Embed(ctx, article.NormalizedText)
		if err != nil {
			return fmt.Errorf("compute embedding for article %s: %w", article.ID, err)
		}
		vec = computed
		article.Embedding = computed
	}

	normalized := l2Normalize(vec)

	idx.mu.Lock()
	idx.entries[article.ID] = entry{vector: normalized, contentHash: hash, publishedAt: article.PublishedAt}
	idx.mu.Unlock()

	return nil
}

// Query returns at most topK results ordered by descending similarity, ties
// broken by most recent publication time, then by article ID so repeated
// queries return identical order. A zero or degenerate query vector yields
// similarity 0 against everything rather than an error.
func (idx *Index) Query(vector []float32, topK int) []Result {
	if topK <= 0 {
		return nil
	}

	query := l2Normalize(vector)

	idx.mu.RLock()
	results := make([]Result, 0, len(idx.entries))
	for id, e := range idx.entries {
		results = append(results, Result{
			ArticleID:   id,
			Similarity:  dot(query, e.vector),
			PublishedAt: e.publishedAt,
		})
	}
	idx.mu.RUnlock()

	sort.Slice(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		if !results[i].PublishedAt.Equal(results[j].PublishedAt) {
			return results[i].PublishedAt.After(results[j].PublishedAt)
		}
		return results[i].ArticleID < results[j].ArticleID
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// Embed computes the embedding for ad-hoc text, e.g. a submitted claim
func (idx *Index) Embed(ctx context.Context, text string) ([]float32, error) {
	return idx.embedder.Embed(ctx, text)
}

// Size returns the number of indexed articles
func (idx *Index) Size() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

// Warm loads a batch of pre-embedded articles, computing vectors for any that
// lack one. Failures are logged and skipped per article, partial progress is
// kept.
func (idx *Index) Warm(ctx context.Context, articles []domain.Article) int {
	loaded := 0
	for i := range articles {
		if err := idx.Upsert(ctx, &articles[i]); err != nil {
			lgr.Printf("[WARN] failed to index article %s: %v", articles[i].ID, err)
			continue
		}
		loaded++
	}
	return loaded
}

// l2Normalize returns a unit-length copy of the vector. A zero vector stays
// zero, which makes its similarity against anything come out as 0.
func l2Normalize(vec []float32) []float32 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}

	out := make([]float32, len(vec))
	if sum == 0 {
		return out
	}

	norm := math.Sqrt(sum)
	for i, v := range vec {
		out[i] = float32(float64(v) / norm)
	}
	return out
}

// dot computes the inner product of two vectors, 0 when lengths differ
func dot(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
