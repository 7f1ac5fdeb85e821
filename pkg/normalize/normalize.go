// Package normalize provides deterministic text canonicalization for articles
// and submitted claims: markup stripping, lowercasing, whitespace collapse,
// stop-word removal and light suffix stemming. Normalize is idempotent, so
// already-normalized text passes through unchanged.
package normalize

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// common English stop words, removed from normalized text
var defaultStopWords = []string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from", "has", "he",
	"in", "is", "it", "its", "of", "on", "that", "the", "to", "was", "were",
	"will", "with", "this", "but", "they", "have", "had", "what", "when",
	"where", "who", "which", "why", "how", "all", "any", "both", "each", "few",
	"more", "most", "other", "some", "such", "no", "nor", "not", "only", "own",
	"same", "so", "than", "too", "very", "can", "did", "do", "does", "doing",
	"done", "down", "up", "she", "her", "his", "him", "their", "them", "there",
	"then", "been", "being", "would", "could", "should", "about", "into",
	"over", "after", "before", "between", "out", "off", "again", "further",
	"once", "here", "because", "until", "while", "during", "above", "below",
	"under", "you", "your", "yours", "we", "our", "ours", "i", "me", "my",
}

// suffixes stripped by the stemmer, longest first
var stemSuffixes = []string{"ing", "ies", "ed", "es", "ly", "s"}

const minStemLength = 4

// Normalizer cleans and canonicalizes raw text
type Normalizer struct {
	policy    *bluemonday.Policy
	stopWords map[string]struct{}
	stemming  bool
}

// Option configures a Normalizer
type Option func(*Normalizer)

// WithStopWords replaces the default stop-word set
func WithStopWords(words []string) Option {
	return func(n *Normalizer) {
		n.stopWords = make(map[string]struct{}, len(words))
		for _, w := range words {
			n.stopWords[strings.ToLower(w)] = struct{}{}
		}
	}
}

// WithoutStemming disables suffix stemming
func WithoutStemming() Option {
	return func(n *Normalizer) { n.stemming = false }
}

// New creates a normalizer with the default stop-word set and stemming enabled
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		policy:   bluemonday.StrictPolicy(),
		stemming: true,
	}
	WithStopWords(defaultStopWords)(n)
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize canonicalizes raw text. Empty or whitespace-only input yields
// empty output. Normalize(Normalize(x)) == Normalize(x) for any x.
func (n *Normalizer) Normalize(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	// strip markup and decode entities
	text = n.policy.Sanitize(text)
	text = html.UnescapeString(text)
	text = strings.ToLower(text)

	// split on anything that is not a letter, dropping punctuation and digits
	tokens := strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsLetter(r) })

	result := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if n.stemming {
			tok = stem(tok)
		}
		if len(tok) <= 2 {
			continue
		}
		if _, stop := n.stopWords[tok]; stop {
			continue
		}
		result = append(result, tok)
	}

	return strings.Join(result, " ")
}

// stem strips known suffixes until none applies. Running to a fixed point
// keeps Normalize idempotent even when stripping exposes another suffix.
func stem(token string) string {
	for {
		stripped := false
		for _, suf := range stemSuffixes {
			if len(token) >= minStemLength+len(suf) && strings.HasSuffix(token, suf) {
				token = strings.TrimSuffix(token, suf)
				stripped = true
				break
			}
		}
		if !stripped {
			return token
		}
	}
}
