package feed

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsproof/pkg/config"
	"github.com/umputun/newsproof/pkg/domain"
)

//go:generate moq -out mocks/feed_parser.go -pkg mocks -skip-ensure -fmt goimports . FeedParser
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore

// FeedParser fetches and parses a single feed URL
type FeedParser interface {
	Parse(ctx context.Context, url string) (*ParsedFeed, error)
}

// Extractor pulls full article text from a web page
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// ArticleStore persists new articles, reporting whether the id was new
type ArticleStore interface {
	CreateArticle(ctx context.Context, article *domain.Article) (inserted bool, err error)
}

// Normalizer canonicalizes text for categorization and indexing
type Normalizer interface {
	Normalize(text string) string
}

// Categorizer assigns a category from normalized title and text
type Categorizer interface {
	Categorize(normalizedTitle, normalizedText string) domain.Category
}

// Ingestor pulls entries from the configured trusted sources and turns them
// into stored articles. Each source is fetched independently, a broken feed
// never blocks the others.
type Ingestor struct {
	parser      FeedParser
	extractor   Extractor
	store       ArticleStore
	normalizer  Normalizer
	categorizer Categorizer
	sources     []config.Source
	maxWorkers  int

	mu      sync.Mutex
	lastRun map[string]time.Time // per-source fetch times, guards Interval
}

// IngestorParams holds dependencies for NewIngestor
type IngestorParams struct {
	Parser      FeedParser
	Extractor   Extractor // optional, nil disables full-text extraction
	Store       ArticleStore
	Normalizer  Normalizer
	Categorizer Categorizer
	Sources     []config.Source
	MaxWorkers  int
}

// NewIngestor creates an ingestor for the given sources
func NewIngestor(params IngestorParams) *Ingestor {
	if params.MaxWorkers <= 0 {
		params.MaxWorkers = 4
	}
	return &Ingestor{
		parser:      params.Parser,
		extractor:   params.Extractor,
		store:       params.Store,
		normalizer:  params.Normalizer,
		categorizer: params.Categorizer,
		sources:     params.Sources,
		maxWorkers:  params.MaxWorkers,
		lastRun:     make(map[string]time.Time),
	}
}

// Ingest fetches all sources concurrently and returns the articles that were
// new in this pass. Per-source failures are logged and skipped.
func (i *Ingestor) Ingest(ctx context.Context) []domain.Article {
	var mu sync.Mutex
	var result []domain.Article

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.maxWorkers)

	for _, src := range i.sources {
		if !i.due(src) {
			continue
		}
		g.Go(func() error {
			articles, err := i.ingestSource(gctx, src)
			if err != nil {
				lgr.Printf("[WARN] failed to ingest source %s: %v", src.Name, err)
				return nil // isolate source failures
			}
			mu.Lock()
			result = append(result, articles...)
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait() // workers never return errors

	lgr.Printf("[INFO] ingest pass completed, %d new articles from %d sources", len(result), len(i.sources))
	return result
}

// due reports whether the source's fetch interval has elapsed and marks it
// fetched. Sources without an interval run on every pass. A small slack
// tolerates scheduler ticks arriving a hair before the interval elapses.
func (i *Ingestor) due(src config.Source) bool {
	if src.Interval == 0 {
		return true
	}
	slack := src.Interval / 20
	if slack > time.Second {
		slack = time.Second
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if last, ok := i.lastRun[src.Name]; ok && time.Since(last) < src.Interval-slack {
		return false
	}
	i.lastRun[src.Name] = time.Now()
	return true
}

// ingestSource fetches a single feed and stores its new entries
func (i *Ingestor) ingestSource(ctx context.Context, src config.Source) ([]domain.Article, error) {
	var parsed *ParsedFeed
	retrier := repeater.NewBackoff(3, 500*time.Millisecond, repeater.WithMaxDelay(5*time.Second))
	err := retrier.Do(ctx, func() error {
		var e error
		parsed, e = i.parser.Parse(ctx, src.URL)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", src.URL, err)
	}

	items := parsed.Items
	if src.MaxArticles > 0 && len(items) > src.MaxArticles {
		items = items[:src.MaxArticles]
	}

	var articles []domain.Article
	for _, item := range items {
		if item.Link == "" {
			lgr.Printf("[DEBUG] skipping entry without link in %s", src.Name)
			continue
		}

		article, ok := i.buildArticle(ctx, src, item)
		if !ok {
			continue
		}

		inserted, err := i.store.CreateArticle(ctx, &article)
		if err != nil {
			lgr.Printf("[WARN] failed to store article %s: %v", item.Link, err)
			continue
		}
		if !inserted {
			continue // already known
		}
		articles = append(articles, article)
	}

	lgr.Printf("[DEBUG] source %s: %d entries, %d new", src.Name, len(items), len(articles))
	return articles, nil
}

// buildArticle converts a feed entry into a normalized, categorized article.
// Returns false when the entry has no usable text after normalization.
func (i *Ingestor) buildArticle(ctx context.Context, src config.Source, item ParsedItem) (domain.Article, bool) {
	body := item.Content
	if body == "" {
		body = item.Description
	}

	// full-text extraction is best effort, feed summary remains the fallback
	if src.Extract && i.extractor != nil {
		if text, err := i.extractor.Extract(ctx, item.Link); err != nil {
			lgr.Printf("[WARN] extraction failed for %s, using feed text: %v", item.Link, err)
		} else {
			body = text
		}
	}

	rawText := strings.TrimSpace(item.Title + "\n\n" + body)
	normalizedText := i.normalizer.Normalize(rawText)
	if normalizedText == "" {
		lgr.Printf("[DEBUG] skipping entry %s, empty after normalization", item.Link)
		return domain.Article{}, false
	}
	normalizedTitle := i.normalizer.Normalize(item.Title)

	article := domain.Article{
		ID:             domain.ArticleID(item.Link, item.Published),
		SourceName:     src.Name,
		URL:            item.Link,
		Title:          item.Title,
		PublishedAt:    item.Published,
		RawText:        rawText,
		NormalizedText: normalizedText,
		Category:       i.categorizer.Categorize(normalizedTitle, normalizedText),
		TrustWeight:    1.0,
		CreatedAt:      time.Now().UTC(),
	}
	return article, true
}
