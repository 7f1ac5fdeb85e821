// Package checker turns a submitted claim into a factuality verdict by
// scoring it against the trusted corpus. The pipeline is deterministic for a
// fixed corpus and trust-weight snapshot: the same claim always yields the
// identical verdict, which keeps results auditable.
package checker

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsproof/pkg/domain"
	"github.com/umputun/newsproof/pkg/index"
)

// ErrEmptyInput is returned when claim text normalizes to nothing
var ErrEmptyInput = errors.New("empty claim text")

// Normalizer canonicalizes claim text
type Normalizer interface {
	Normalize(text string) string
}

// Index answers similarity queries over the article corpus
type Index interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Query(vector []float32, topK int) []index.Result
}

// TrustSource supplies per-article trust weights
type TrustSource interface {
	Weight(articleID string) float64
}

// ArticleSource resolves matched article metadata
type ArticleSource interface {
	Get(ctx context.Context, id string) (*domain.Article, error)
}

// Config holds verdict aggregation policy
type Config struct {
	TopK              int     // match pool size
	TopN              int     // aggregation window, must not exceed TopK
	Verified          float64 // confidence threshold for Verified
	PartiallyVerified float64 // threshold for PartiallyVerified
	Disputed          float64 // threshold for Disputed
	RelevanceFloor    float64 // minimum similarity to count a match at all
}

// Checker verifies submitted claims against the trusted corpus
type Checker struct {
	normalizer Normalizer
	index      Index
	trust      TrustSource
	articles   ArticleSource
	cfg        Config
}

// New creates a fact checker. Zero config fields fall back to topK 10,
// topN 3, thresholds 0.85/0.6/0.35 and relevance floor 0.2.
func New(normalizer Normalizer, idx Index, trust TrustSource, articles ArticleSource, cfg Config) *Checker {
	if cfg.TopK == 0 {
		cfg.TopK = 10
	}
	if cfg.TopN == 0 {
		cfg.TopN = 3
	}
	if cfg.Verified == 0 {
		cfg.Verified = 0.85
	}
	if cfg.PartiallyVerified == 0 {
		cfg.PartiallyVerified = 0.6
	}
	if cfg.Disputed == 0 {
		cfg.Disputed = 0.35
	}
	if cfg.RelevanceFloor == 0 {
		cfg.RelevanceFloor = 0.2
	}

	return &Checker{normalizer: normalizer, index: idx, trust: trust, articles: articles, cfg: cfg}
}

// Verify checks a claim against the corpus and returns a verdict. The claim
// itself is never persisted and no article is mutated.
func (c *Checker) Verify(ctx context.Context, claimText string) (*domain.Verdict, error) {
	normalized := c.normalizer.Normalize(claimText)
	if normalized == "" {
		return nil, ErrEmptyInput
	}

	vector, err := c.index.Embed(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("embed claim: %w", err)
	}

	results := c.index.Query(vector, c.cfg.TopK)

	// collect matches above the relevance floor; sub-floor hits are noise,
	// reporting them would fake corroboration
	matches := make([]domain.Match, 0, len(results))
	for _, r := range results {
		similarity := clamp01(r.Similarity)
		if similarity < c.cfg.RelevanceFloor {
			continue
		}

		weight := c.trust.Weight(r.ArticleID)
		m := domain.Match{
			ArticleID:     r.ArticleID,
			Similarity:    similarity,
			TrustWeight:   weight,
			AdjustedScore: similarity * weight,
		}

		if article, gerr := c.articles.Get(ctx, r.ArticleID); gerr != nil {
			lgr.Printf("[WARN] matched article %s not resolvable: %v", r.ArticleID, gerr)
		} else if article != nil {
			m.SourceName = article.SourceName
			m.Title = article.Title
			m.URL = article.URL
		}

		matches = append(matches, m)
	}

	if len(matches) == 0 {
		return &domain.Verdict{Label: domain.VerdictUnverified, Confidence: 0, SupportingMatches: []domain.Match{}}, nil
	}

	confidence := c.aggregate(matches)

	return &domain.Verdict{
		Label:             c.label(confidence),
		Confidence:        confidence,
		SupportingMatches: matches,
	}, nil
}

// aggregate computes the self-weighted mean of the top-N adjusted scores:
// sum(score^2)/sum(score). Weighting by the scores themselves emphasizes
// strong matches and dampens noise from weak ones.
func (c *Checker) aggregate(matches []domain.Match) float64 {
	top := make([]domain.Match, len(matches))
	copy(top, matches)
	sort.SliceStable(top, func(i, j int) bool { return top[i].AdjustedScore > top[j].AdjustedScore })

	if len(top) > c.cfg.TopN {
		top = top[:c.cfg.TopN]
	}

	var sum, weightedSum float64
	for _, m := range top {
		sum += m.AdjustedScore
		weightedSum += m.AdjustedScore * m.AdjustedScore
	}
	if sum == 0 {
		return 0
	}

	return clamp01(weightedSum / sum)
}

// label maps confidence to a verdict label via the configured thresholds
func (c *Checker) label(confidence float64) domain.VerdictLabel {
	switch {
	case confidence >= c.cfg.Verified:
		return domain.VerdictVerified
	case confidence >= c.cfg.PartiallyVerified:
		return domain.VerdictPartiallyVerified
	case confidence >= c.cfg.Disputed:
		return domain.VerdictDisputed
	default:
		return domain.VerdictUnverified
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
