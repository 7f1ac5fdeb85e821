// Package embed computes fixed-length vector representations of text behind a
// capability interface, so the concrete model is swappable without touching
// the index or the checker.
package embed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Embedder computes a fixed-length vector for a piece of text
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimension() int
}

// Config holds settings for the OpenAI-compatible embedding client
type Config struct {
	Endpoint  string // OpenAI-compatible API endpoint, empty for the default
	APIKey    string
	Model     string
	Dimension int
	Timeout   time.Duration // per-request timeout, 0 for no limit
}

// OpenAIEmbedder computes embeddings via an OpenAI-compatible API
type OpenAIEmbedder struct {
	client *openai.Client
	model  string
	dim    int
}

// NewOpenAIEmbedder creates an embedder backed by an OpenAI-compatible endpoint
func NewOpenAIEmbedder(cfg Config) *OpenAIEmbedder {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &OpenAIEmbedder{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
		dim:    cfg.Dimension,
	}
}

// Embed computes the embedding for a single text
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("empty text")
	}

	req := openai.EmbeddingRequestStrings{
		Input:      []string{text},
		Model:      openai.EmbeddingModel(e.model),
		Dimensions: e.dim,
	}

	resp, err := e.client.CreateEmbeddings(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embedding returned for text")
	}

	vec := resp.Data[0].Embedding
	if len(vec) == 0 {
		return nil, fmt.Errorf("empty embedding returned for text")
	}

	return vec, nil
}

// Dimension returns the configured vector size
func (e *OpenAIEmbedder) Dimension() int {
	return e.dim
}
