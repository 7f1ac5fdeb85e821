package checker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsproof/pkg/domain"
	"github.com/umputun/newsproof/pkg/embed"
	"github.com/umputun/newsproof/pkg/index"
	"github.com/umputun/newsproof/pkg/normalize"
	"github.com/umputun/newsproof/pkg/trust"
)

// stubArticles is an in-memory ArticleSource
type stubArticles map[string]*domain.Article

func (s stubArticles) Get(_ context.Context, id string) (*domain.Article, error) {
	if a, ok := s[id]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("article %s not found", id)
}

// fixture wires a checker over a small corpus
type fixture struct {
	checker  *Checker
	idx      *index.Index
	trust    *trust.Adjuster
	articles stubArticles
	norm     *normalize.Normalizer
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	norm := normalize.New()
	idx := index.New(embed.NewHashEmbedder(256))
	adjuster := trust.New(trust.Config{VoteStep: 0.05, MinBound: 0.5, MaxBound: 1.5})
	articles := stubArticles{}

	return &fixture{
		checker:  New(norm, idx, adjuster, articles, cfg),
		idx:      idx,
		trust:    adjuster,
		articles: articles,
		norm:     norm,
	}
}

func (f *fixture) addArticle(t *testing.T, id, source, rawText string) {
	t.Helper()
	a := &domain.Article{
		ID:             id,
		SourceName:     source,
		URL:            "https://" + source + ".example.com/" + id,
		Title:          rawText,
		PublishedAt:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		RawText:        rawText,
		NormalizedText: f.norm.Normalize(rawText),
		TrustWeight:    1.0,
	}
	require.NoError(t, f.idx.Upsert(context.Background(), a))
	f.articles[id] = a
}

func TestChecker_EmptyInput(t *testing.T) {
	f := newFixture(t, Config{})

	_, err := f.checker.Verify(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyInput)

	// stop words only, normalizes to nothing
	_, err = f.checker.Verify(context.Background(), "the and of it")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestChecker_EmptyCorpus(t *testing.T) {
	f := newFixture(t, Config{})

	verdict, err := f.checker.Verify(context.Background(), "election results were confirmed yesterday")
	require.NoError(t, err)

	assert.Equal(t, domain.VerdictUnverified, verdict.Label)
	assert.Zero(t, verdict.Confidence)
	assert.Empty(t, verdict.SupportingMatches)
}

func TestChecker_CorroboratedClaim(t *testing.T) {
	f := newFixture(t, Config{})

	text := "Election results confirmed by official count across all districts on Tuesday"
	f.addArticle(t, "a1", "bbc", text)
	f.addArticle(t, "a2", "reuters", text+" according to observers")

	verdict, err := f.checker.Verify(context.Background(), "Officials confirmed election results count across all districts on Tuesday")
	require.NoError(t, err)

	assert.Equal(t, domain.VerdictVerified, verdict.Label)
	assert.Greater(t, verdict.Confidence, 0.85)
	require.Len(t, verdict.SupportingMatches, 2)

	// matches carry resolved source metadata
	sources := []string{verdict.SupportingMatches[0].SourceName, verdict.SupportingMatches[1].SourceName}
	assert.ElementsMatch(t, []string{"bbc", "reuters"}, sources)
}

func TestChecker_UnrelatedClaim(t *testing.T) {
	f := newFixture(t, Config{})

	f.addArticle(t, "a1", "bbc", "Parliament passed the new budget amid heated debate between parties")
	f.addArticle(t, "a2", "reuters", "President signed the trade agreement after lengthy negotiations")

	verdict, err := f.checker.Verify(context.Background(), "Whisk the eggs with sugar and fold in melted chocolate before baking")
	require.NoError(t, err)

	assert.Equal(t, domain.VerdictUnverified, verdict.Label)
	assert.Zero(t, verdict.Confidence)
	assert.Empty(t, verdict.SupportingMatches, "sub-floor matches are not reported")
}

func TestChecker_Deterministic(t *testing.T) {
	f := newFixture(t, Config{})

	f.addArticle(t, "a1", "bbc", "Central bank raised interest rates by half a point citing inflation")
	f.addArticle(t, "a2", "reuters", "Markets fell sharply after the central bank decision on rates")

	claim := "The central bank raised interest rates citing inflation pressure"

	first, err := f.checker.Verify(context.Background(), claim)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := f.checker.Verify(context.Background(), claim)
		require.NoError(t, err)
		assert.Equal(t, first, again, "identical claim against unchanged corpus must yield identical verdict")
	}
}

func TestChecker_DownVoteLowersConfidence(t *testing.T) {
	f := newFixture(t, Config{})

	text := "Election results confirmed by official count across all districts"
	f.addArticle(t, "a1", "bbc", text)

	claim := "Officials confirmed the election results count across districts"

	before, err := f.checker.Verify(context.Background(), claim)
	require.NoError(t, err)
	require.NotEmpty(t, before.SupportingMatches)

	err = f.trust.ApplyVote(domain.VoteEvent{
		ArticleID: "a1", Actor: "alice", Direction: domain.VoteDown, Timestamp: time.Now(),
	})
	require.NoError(t, err)

	after, err := f.checker.Verify(context.Background(), claim)
	require.NoError(t, err)

	assert.Less(t, after.Confidence, before.Confidence, "down vote on the matched article must strictly lower confidence")
	assert.InDelta(t, 0.95, after.SupportingMatches[0].TrustWeight, 0.0001)
}

func TestChecker_UpVoteNeverLowersConfidence(t *testing.T) {
	f := newFixture(t, Config{})

	text := "Election results confirmed by official count across all districts"
	f.addArticle(t, "a1", "bbc", text)
	f.addArticle(t, "a2", "reuters", text+" with full turnout figures published")

	claim := "Officials confirmed election results count across all districts"

	before, err := f.checker.Verify(context.Background(), claim)
	require.NoError(t, err)
	require.NotEmpty(t, before.SupportingMatches)

	err = f.trust.ApplyVote(domain.VoteEvent{
		ArticleID: before.SupportingMatches[0].ArticleID,
		Actor:     "bob", Direction: domain.VoteUp, Timestamp: time.Now(),
	})
	require.NoError(t, err)

	after, err := f.checker.Verify(context.Background(), claim)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, after.Confidence, before.Confidence)
}

func TestChecker_TopNAggregation(t *testing.T) {
	f := newFixture(t, Config{TopK: 10, TopN: 2})

	base := "Election results confirmed by official count"
	f.addArticle(t, "a1", "bbc", base)
	f.addArticle(t, "a2", "reuters", base+" across districts")
	f.addArticle(t, "a3", "apnews", base+" with some partial figures still pending review")

	verdict, err := f.checker.Verify(context.Background(), "Officials confirmed election results count")
	require.NoError(t, err)

	// all three make the match list; only the top two feed the confidence
	assert.Len(t, verdict.SupportingMatches, 3)
	assert.Greater(t, verdict.Confidence, 0.0)
}

func TestChecker_NoArticleMutation(t *testing.T) {
	f := newFixture(t, Config{})

	text := "Election results confirmed by official count"
	f.addArticle(t, "a1", "bbc", text)
	original := *f.articles["a1"]

	_, err := f.checker.Verify(context.Background(), "Officials confirmed the election count")
	require.NoError(t, err)

	assert.Equal(t, original.NormalizedText, f.articles["a1"].NormalizedText)
	assert.Equal(t, original.TrustWeight, f.articles["a1"].TrustWeight)
}
