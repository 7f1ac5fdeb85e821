package index

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsproof/pkg/domain"
	"github.com/umputun/newsproof/pkg/embed"
)

// countingEmbedder wraps the hash embedder and records calls
type countingEmbedder struct {
	*embed.HashEmbedder
	mu    sync.Mutex
	calls int
}

func (c *countingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.HashEmbedder.Embed(ctx, text)
}

func testArticle(id, text string, published time.Time) domain.Article {
	return domain.Article{
		ID:             id,
		NormalizedText: text,
		PublishedAt:    published,
		TrustWeight:    1.0,
	}
}

func TestIndex_UpsertAndQuery(t *testing.T) {
	idx := New(embed.NewHashEmbedder(128))
	ctx := context.Background()

	a1 := testArticle("a1", "election result confirm official count", time.Now())
	a2 := testArticle("a2", "chocolate cake recipe butter sugar", time.Now())

	require.NoError(t, idx.Upsert(ctx, &a1))
	require.NoError(t, idx.Upsert(ctx, &a2))
	assert.Equal(t, 2, idx.Size())
	assert.NotNil(t, a1.Embedding, "embedding written back to article")

	query, err := idx.Embed(ctx, "election result official count")
	require.NoError(t, err)

	results := idx.Query(query, 10)
	require.Len(t, results, 2)
	assert.Equal(t, "a1", results[0].ArticleID)
	assert.Greater(t, results[0].Similarity, results[1].Similarity)
}

func TestIndex_UpsertIdempotent(t *testing.T) {
	emb := &countingEmbedder{HashEmbedder: embed.NewHashEmbedder(64)}
	idx := New(emb)
	ctx := context.Background()

	a := testArticle("a1", "election result confirm", time.Now())
	require.NoError(t, idx.Upsert(ctx, &a))
	assert.Equal(t, 1, emb.calls)

	// unchanged article: no recompute, no growth
	again := testArticle("a1", "election result confirm", time.Now())
	again.Embedding = nil
	require.NoError(t, idx.Upsert(ctx, &again))
	assert.Equal(t, 1, emb.calls, "unchanged article must not trigger recomputation")
	assert.Equal(t, 1, idx.Size())
}

func TestIndex_RecomputeOnContentChange(t *testing.T) {
	emb := &countingEmbedder{HashEmbedder: embed.NewHashEmbedder(64)}
	idx := New(emb)
	ctx := context.Background()

	a := testArticle("a1", "election result confirm", time.Now())
	require.NoError(t, idx.Upsert(ctx, &a))

	changed := testArticle("a1", "election result confirm updated figures", time.Now())
	require.NoError(t, idx.Upsert(ctx, &changed))

	assert.Equal(t, 2, emb.calls, "changed text must trigger recomputation")
	assert.Equal(t, 1, idx.Size())
}

func TestIndex_QueryOrdering(t *testing.T) {
	idx := New(embed.NewHashEmbedder(64))
	ctx := context.Background()

	older := testArticle("older", "election result confirm", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := testArticle("newer", "election result confirm", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, idx.Upsert(ctx, &older))
	require.NoError(t, idx.Upsert(ctx, &newer))

	query, err := idx.Embed(ctx, "election result confirm")
	require.NoError(t, err)

	// identical text gives identical similarity: most recent wins the tie
	results := idx.Query(query, 10)
	require.Len(t, results, 2)
	assert.Equal(t, "newer", results[0].ArticleID)
	assert.Equal(t, "older", results[1].ArticleID)
}

func TestIndex_QueryDeterministicOnFullTies(t *testing.T) {
	idx := New(embed.NewHashEmbedder(64))
	ctx := context.Background()

	// identical text and identical timestamp: similarity and recency both tie,
	// order must still be stable across repeated queries
	published := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	for _, id := range []string{"e", "b", "d", "a", "c"} {
		a := testArticle(id, "election result confirm", published)
		require.NoError(t, idx.Upsert(ctx, &a))
	}

	query, err := idx.Embed(ctx, "election result confirm")
	require.NoError(t, err)

	first := idx.Query(query, 10)
	require.Len(t, first, 5)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"},
		[]string{first[0].ArticleID, first[1].ArticleID, first[2].ArticleID, first[3].ArticleID, first[4].ArticleID})

	for i := 0; i < 50; i++ {
		assert.Equal(t, first, idx.Query(query, 10), "tied results must keep identical order")
	}
}

func TestIndex_QueryTopK(t *testing.T) {
	idx := New(embed.NewHashEmbedder(64))
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		a := testArticle(fmt.Sprintf("a%d", i), fmt.Sprintf("article number %d text", i), time.Now())
		require.NoError(t, idx.Upsert(ctx, &a))
	}

	query, err := idx.Embed(ctx, "article number text")
	require.NoError(t, err)

	assert.Len(t, idx.Query(query, 3), 3)
	assert.Len(t, idx.Query(query, 100), 10)
	assert.Empty(t, idx.Query(query, 0))
}

func TestIndex_ZeroVector(t *testing.T) {
	idx := New(embed.NewHashEmbedder(64))
	ctx := context.Background()

	a := testArticle("a1", "election result confirm", time.Now())
	require.NoError(t, idx.Upsert(ctx, &a))

	// degenerate query: similarity 0, not an error
	results := idx.Query(make([]float32, 64), 10)
	require.Len(t, results, 1)
	assert.Zero(t, results[0].Similarity)
}

func TestIndex_ConcurrentUpsertQuery(t *testing.T) {
	idx := New(embed.NewHashEmbedder(64))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			a := testArticle(fmt.Sprintf("a%d", n), fmt.Sprintf("concurrent article %d", n), time.Now())
			assert.NoError(t, idx.Upsert(ctx, &a))
		}(i)
	}

	query, err := idx.Embed(ctx, "concurrent article")
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, r := range idx.Query(query, 5) {
				assert.NotEmpty(t, r.ArticleID)
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, 20, idx.Size())
}

func TestIndex_Warm(t *testing.T) {
	idx := New(embed.NewHashEmbedder(64))

	articles := []domain.Article{
		testArticle("a1", "election result confirm", time.Now()),
		testArticle("a2", "market rally continue", time.Now()),
		{ID: "", NormalizedText: "broken"}, // no id, skipped
	}

	loaded := idx.Warm(context.Background(), articles)
	assert.Equal(t, 2, loaded)
	assert.Equal(t, 2, idx.Size())
}
