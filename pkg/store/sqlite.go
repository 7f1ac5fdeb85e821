package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/umputun/newsproof/pkg/domain"
)

//go:embed schema.sql
var schema string

// SQLite implements Store on an embedded SQLite database
type SQLite struct {
	conn *sqlx.DB
}

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewSQLite opens the database, applies pragmas and initializes the schema
func NewSQLite(cfg Config) (*SQLite, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:newsproof.db?cache=shared&mode=rwc"
	}

	conn, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	s := &SQLite{conn: conn}
	if _, err := conn.ExecContext(context.Background(), schema); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *SQLite) Close() error {
	return s.conn.Close()
}

// articleRow maps the articles table
type articleRow struct {
	ID             string    `db:"id"`
	SourceName     string    `db:"source_name"`
	URL            string    `db:"url"`
	Title          string    `db:"title"`
	PublishedAt    time.Time `db:"published_at"`
	RawText        string    `db:"raw_text"`
	NormalizedText string    `db:"normalized_text"`
	Category       string    `db:"category"`
	Embedding      []byte    `db:"embedding"`
	TrustWeight    float64   `db:"trust_weight"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r *articleRow) toDomain() (*domain.Article, error) {
	vec, err := decodeVector(r.Embedding)
	if err != nil {
		return nil, fmt.Errorf("article %s: %w", r.ID, err)
	}
	return &domain.Article{
		ID:             r.ID,
		SourceName:     r.SourceName,
		URL:            r.URL,
		Title:          r.Title,
		PublishedAt:    r.PublishedAt,
		RawText:        r.RawText,
		NormalizedText: r.NormalizedText,
		Category:       domain.Category(r.Category),
		Embedding:      vec,
		TrustWeight:    r.TrustWeight,
		CreatedAt:      r.CreatedAt,
	}, nil
}

// Get returns an article by id
func (s *SQLite) Get(ctx context.Context, id string) (*domain.Article, error) {
	var row articleRow
	err := s.conn.GetContext(ctx, &row, "SELECT * FROM articles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article %s: %w", id, err)
	}
	return row.toDomain()
}

// CreateArticle inserts an article unless its id already exists. Returns true
// when a new row was inserted.
func (s *SQLite) CreateArticle(ctx context.Context, article *domain.Article) (bool, error) {
	query := `
		INSERT OR IGNORE INTO articles (
			id, source_name, url, title, published_at,
			raw_text, normalized_text, category, embedding, trust_weight
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	category := article.Category
	if category == "" {
		category = domain.CategoryUncategorized
	}

	var res sql.Result
	err := s.withLockRetry(ctx, func() error {
		var execErr error
		res, execErr = s.conn.ExecContext(ctx, query,
			article.ID, article.SourceName, article.URL, article.Title, article.PublishedAt,
			article.RawText, article.NormalizedText, string(category),
			encodeVector(article.Embedding), article.TrustWeight)
		return execErr
	})
	if err != nil {
		return false, fmt.Errorf("create article %s: %w", article.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// UpdateEmbedding stores a computed embedding for an article
func (s *SQLite) UpdateEmbedding(ctx context.Context, id string, embedding []float32) error {
	err := s.withLockRetry(ctx, func() error {
		_, execErr := s.conn.ExecContext(ctx,
			"UPDATE articles SET embedding = ? WHERE id = ?", encodeVector(embedding), id)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("update embedding for %s: %w", id, err)
	}
	return nil
}

// UpdateTrustWeight stores the current trust weight for an article
func (s *SQLite) UpdateTrustWeight(ctx context.Context, id string, weight float64) error {
	err := s.withLockRetry(ctx, func() error {
		_, execErr := s.conn.ExecContext(ctx,
			"UPDATE articles SET trust_weight = ? WHERE id = ?", weight, id)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("update trust weight for %s: %w", id, err)
	}
	return nil
}

// ListArticles returns up to limit articles, most recent first
func (s *SQLite) ListArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	var rows []articleRow
	err := s.conn.SelectContext(ctx, &rows,
		"SELECT * FROM articles ORDER BY published_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return s.rowsToDomain(rows)
}

// QueryByCategory returns up to limit articles in a category, most recent first
func (s *SQLite) QueryByCategory(ctx context.Context, category domain.Category, limit int) ([]domain.Article, error) {
	var rows []articleRow
	err := s.conn.SelectContext(ctx, &rows,
		"SELECT * FROM articles WHERE category = ? ORDER BY published_at DESC LIMIT ?",
		string(category), limit)
	if err != nil {
		return nil, fmt.Errorf("query articles by category %s: %w", category, err)
	}
	return s.rowsToDomain(rows)
}

// RecordVote persists a vote, replacing the actor's previous vote on the article
func (s *SQLite) RecordVote(ctx context.Context, event domain.VoteEvent) error {
	query := `
		INSERT OR REPLACE INTO votes (article_id, actor, direction, voted_at)
		VALUES (?, ?, ?, ?)`

	err := s.withLockRetry(ctx, func() error {
		_, execErr := s.conn.ExecContext(ctx, query,
			event.ArticleID, event.Actor, string(event.Direction), event.Timestamp)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("record vote on %s: %w", event.ArticleID, err)
	}
	return nil
}

// ListVotes returns all recorded votes
func (s *SQLite) ListVotes(ctx context.Context) ([]domain.VoteEvent, error) {
	var rows []struct {
		ArticleID string    `db:"article_id"`
		Actor     string    `db:"actor"`
		Direction string    `db:"direction"`
		VotedAt   time.Time `db:"voted_at"`
	}
	err := s.conn.SelectContext(ctx, &rows, "SELECT * FROM votes ORDER BY voted_at")
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}

	events := make([]domain.VoteEvent, 0, len(rows))
	for _, r := range rows {
		events = append(events, domain.VoteEvent{
			ArticleID: r.ArticleID,
			Actor:     r.Actor,
			Direction: domain.VoteDirection(r.Direction),
			Timestamp: r.VotedAt,
		})
	}
	return events, nil
}

func (s *SQLite) rowsToDomain(rows []articleRow) ([]domain.Article, error) {
	articles := make([]domain.Article, 0, len(rows))
	for i := range rows {
		a, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}
	return articles, nil
}

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// withLockRetry retries an operation on SQLite lock/busy errors with backoff
func (s *SQLite) withLockRetry(ctx context.Context, operation func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		err := operation()
		if err != nil && !isLockError(err) {
			return &criticalError{err: err}
		}
		return err // nil or retryable lock error
	})
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
