package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsproof/pkg/domain"
)

//go:generate moq -out mocks/ingestor.go -pkg mocks -skip-ensure -fmt goimports . Ingestor
//go:generate moq -out mocks/indexer.go -pkg mocks -skip-ensure -fmt goimports . Indexer
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/trust_seeder.go -pkg mocks -skip-ensure -fmt goimports . TrustSeeder

// Ingestor pulls new articles from the configured sources
type Ingestor interface {
	Ingest(ctx context.Context) []domain.Article
}

// Indexer maintains the in-memory vector index
type Indexer interface {
	Upsert(ctx context.Context, article *domain.Article) error
	Warm(ctx context.Context, articles []domain.Article) int
}

// Store is the persistence surface the scheduler needs
type Store interface {
	ListArticles(ctx context.Context, limit int) ([]domain.Article, error)
	ListVotes(ctx context.Context) ([]domain.VoteEvent, error)
	UpdateEmbedding(ctx context.Context, id string, embedding []float32) error
}

// TrustSeeder rebuilds trust state from persisted votes
type TrustSeeder interface {
	Seed(events []domain.VoteEvent)
}

// Scheduler runs the periodic ingestion loop: fetch sources, store new
// articles, embed and index them. On start it warms the index and trust
// state from the database so restarts don't lose the corpus.
type Scheduler struct {
	ingestor Ingestor
	index    Indexer
	store    Store
	trust    TrustSeeder
	interval time.Duration
	warmRows int

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Config holds scheduler configuration
type Config struct {
	UpdateInterval time.Duration
	WarmLimit      int // max articles loaded into the index on start
}

// NewScheduler creates a new scheduler instance
func NewScheduler(ingestor Ingestor, index Indexer, store Store, trust TrustSeeder, cfg Config) *Scheduler {
	if cfg.UpdateInterval == 0 {
		cfg.UpdateInterval = 30 * time.Minute
	}
	if cfg.WarmLimit == 0 {
		cfg.WarmLimit = 10000
	}

	return &Scheduler{
		ingestor: ingestor,
		index:    index,
		store:    store,
		trust:    trust,
		interval: cfg.UpdateInterval,
		warmRows: cfg.WarmLimit,
	}
}

// Start warms up state from the store and begins the ingestion loop
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.warmUp(ctx)

	s.wg.Add(1)
	go s.ingestWorker(ctx)

	lgr.Printf("[INFO] scheduler started with update interval %v", s.interval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// warmUp loads persisted articles into the vector index and replays votes
// into the trust state
func (s *Scheduler) warmUp(ctx context.Context) {
	articles, err := s.store.ListArticles(ctx, s.warmRows)
	if err != nil {
		lgr.Printf("[ERROR] failed to load articles for index warm-up: %v", err)
	} else {
		loaded := s.index.Warm(ctx, articles)
		lgr.Printf("[INFO] index warmed with %d of %d articles", loaded, len(articles))
	}

	votes, err := s.store.ListVotes(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to load votes for trust warm-up: %v", err)
		return
	}
	s.trust.Seed(votes)
	lgr.Printf("[INFO] trust state seeded with %d votes", len(votes))
}

// ingestWorker periodically runs a full ingestion pass
func (s *Scheduler) ingestWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// run immediately on start
	s.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce ingests all sources and indexes whatever came in new
func (s *Scheduler) runOnce(ctx context.Context) {
	articles := s.ingestor.Ingest(ctx)
	if len(articles) == 0 {
		return
	}
	indexed := s.indexArticles(ctx, articles)
	lgr.Printf("[INFO] ingestion pass done, %d new articles, %d indexed", len(articles), indexed)
}

// RunNow triggers a single ingestion pass outside the schedule, used by the
// manual ingest endpoint. Returns the number of new articles.
func (s *Scheduler) RunNow(ctx context.Context) int {
	articles := s.ingestor.Ingest(ctx)
	if len(articles) > 0 {
		s.indexArticles(ctx, articles)
	}
	return len(articles)
}

// indexArticles embeds and indexes new articles and persists the embeddings.
// Failures are logged per article, one bad article never stops the batch.
func (s *Scheduler) indexArticles(ctx context.Context, articles []domain.Article) int {
	indexed := 0
	for i := range articles {
		if ctx.Err() != nil {
			return indexed
		}
		a := &articles[i]
		if err := s.index.Upsert(ctx, a); err != nil {
			lgr.Printf("[WARN] failed to index article %s: %v", a.ID, err)
			continue
		}
		if err := s.store.UpdateEmbedding(ctx, a.ID, a.Embedding); err != nil {
			lgr.Printf("[WARN] failed to persist embedding for %s: %v", a.ID, err)
		}
		indexed++
	}
	return indexed
}
