package domain

// VerdictLabel is the categorical outcome of a fact-check request
type VerdictLabel string

const (
	VerdictVerified          VerdictLabel = "Verified"
	VerdictPartiallyVerified VerdictLabel = "PartiallyVerified"
	VerdictDisputed          VerdictLabel = "Disputed"
	VerdictUnverified        VerdictLabel = "Unverified"
)

// Match is a single corpus article matched against a submitted claim.
// Similarity is cosine similarity clamped to [0, 1]; AdjustedScore is
// similarity multiplied by the article's trust weight at match time.
type Match struct {
	ArticleID     string  `json:"article_id"`
	SourceName    string  `json:"source"`
	Title         string  `json:"title,omitempty"`
	URL           string  `json:"url"`
	Similarity    float64 `json:"similarity"`
	TrustWeight   float64 `json:"trust_weight"`
	AdjustedScore float64 `json:"adjusted_score"`
}

// Verdict is the final result of one verification request, never mutated
// after construction
type Verdict struct {
	Label             VerdictLabel `json:"label"`
	Confidence        float64      `json:"confidence"`
	SupportingMatches []Match      `json:"supporting_matches"`
}
