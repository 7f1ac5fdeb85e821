// Package store is the durable storage collaborator: articles and vote
// events persisted through an injected abstraction, so the pipeline never
// assumes a specific engine or query language.
package store

import (
	"context"
	"errors"

	"github.com/umputun/newsproof/pkg/domain"
)

// ErrNotFound is returned when a requested article does not exist
var ErrNotFound = errors.New("article not found")

// Store persists articles and vote events
type Store interface {
	// Get returns an article by id, ErrNotFound when missing
	Get(ctx context.Context, id string) (*domain.Article, error)

	// CreateArticle inserts an article if its id is not present yet and
	// reports whether a row was actually inserted. Re-inserting an existing
	// article is a no-op, which makes re-ingestion idempotent.
	CreateArticle(ctx context.Context, article *domain.Article) (inserted bool, err error)

	// UpdateEmbedding stores a computed embedding for an article
	UpdateEmbedding(ctx context.Context, id string, embedding []float32) error

	// UpdateTrustWeight stores the current trust weight for an article
	UpdateTrustWeight(ctx context.Context, id string, weight float64) error

	// ListArticles returns up to limit articles, most recent first
	ListArticles(ctx context.Context, limit int) ([]domain.Article, error)

	// QueryByCategory returns up to limit articles with the given category,
	// most recent first
	QueryByCategory(ctx context.Context, category domain.Category, limit int) ([]domain.Article, error)

	// RecordVote persists a vote keyed by (actor, article), replacing the
	// actor's previous vote on the same article
	RecordVote(ctx context.Context, event domain.VoteEvent) error

	// ListVotes returns all recorded votes, used to rebuild trust state
	ListVotes(ctx context.Context) ([]domain.VoteEvent, error)

	// Close releases the underlying resources
	Close() error
}
