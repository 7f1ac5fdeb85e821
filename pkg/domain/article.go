package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Category is a topic label from the fixed taxonomy
type Category string

// fixed topic taxonomy, priority order is defined by categorize.Priority
const (
	CategoryPolitics      Category = "politics"
	CategoryBusiness      Category = "business"
	CategoryTechnology    Category = "technology"
	CategoryHealth        Category = "health"
	CategoryScience       Category = "science"
	CategorySports        Category = "sports"
	CategoryEntertainment Category = "entertainment"
	CategoryWorld         Category = "world"
	CategoryEnvironment   Category = "environment"
	CategoryUncategorized Category = "uncategorized"
)

// Article represents a single normalized news article from a trusted source
type Article struct {
	ID             string
	SourceName     string
	URL            string
	Title          string
	PublishedAt    time.Time
	RawText        string
	NormalizedText string
	Category       Category
	Embedding      []float32 // nil until computed
	TrustWeight    float64
	CreatedAt      time.Time
}

// ArticleID builds the stable article identifier from URL and publication time.
// The same feed entry always hashes to the same ID, making re-ingestion idempotent.
func ArticleID(url string, publishedAt time.Time) string {
	h := sha256.Sum256([]byte(url + "\n" + publishedAt.UTC().Format(time.RFC3339)))
	return hex.EncodeToString(h[:])
}

// ContentHash identifies the normalized text of an article, used to detect
// when a cached embedding is stale
func ContentHash(normalizedText string) string {
	h := sha256.Sum256([]byte(normalizedText))
	return hex.EncodeToString(h[:])
}
