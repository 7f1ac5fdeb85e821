package embed

import (
	"context"
	"hash/fnv"
	"strings"
)

// HashEmbedder is a deterministic, dependency-free embedder: a hashed
// bag-of-words over whitespace tokens. It captures lexical overlap well
// enough for offline runs and tests, and needs no model endpoint. Texts
// sharing most tokens land close in cosine space.
type HashEmbedder struct {
	dim int
}

// NewHashEmbedder creates a hash embedder with the given dimension
func NewHashEmbedder(dim int) *HashEmbedder {
	if dim <= 0 {
		dim = 256
	}
	return &HashEmbedder{dim: dim}
}

// Embed maps each token to a bucket by FNV hash and counts occurrences.
// The same text always yields the same vector.
func (e *HashEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.dim)
	for _, tok := range strings.Fields(text) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(tok))
		vec[h.Sum32()%uint32(e.dim)]++ //nolint:gosec // dim is bounded small
	}
	return vec, nil
}

// Dimension returns the vector size
func (e *HashEmbedder) Dimension() int {
	return e.dim
}
