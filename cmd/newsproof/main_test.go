package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsproof/pkg/config"
	"github.com/umputun/newsproof/pkg/embed"
)

func TestRun_ServerStartStop(t *testing.T) {
	tmpDir := t.TempDir()

	content := fmt.Sprintf(`
server:
  listen: "127.0.0.1:18372"

database:
  dsn: %q
`, filepath.Join(tmpDir, "newsproof.db"))

	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- run(ctx, cfg, false)
	}()

	// wait for server to come up
	var resp *http.Response
	require.Eventually(t, func() bool {
		var e error
		resp, e = http.Get("http://127.0.0.1:18372/ping")
		return e == nil
	}, 3*time.Second, 50*time.Millisecond, "server did not start")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "pong", string(body))

	cancel()

	select {
	case err := <-serverErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Error("server shutdown timeout")
	}
}

func TestMakeEmbedder(t *testing.T) {
	t.Run("no endpoint falls back to hash embedder", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Embedding.Dimension = 64

		emb := makeEmbedder(cfg)
		_, ok := emb.(*embed.HashEmbedder)
		assert.True(t, ok, "expected hash embedder without endpoint and key")
	})

	t.Run("endpoint selects openai client", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Embedding.Endpoint = "http://localhost:11434/v1"
		cfg.Embedding.Model = "nomic-embed-text"
		cfg.Embedding.Dimension = 768

		emb := makeEmbedder(cfg)
		_, ok := emb.(*embed.HashEmbedder)
		assert.False(t, ok, "configured endpoint must not fall back to hash embedder")
	})
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		setupLog(true)
		// the function should complete without panic
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		setupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		// secrets are passed through to the logger, configuration is internal to lgr
		setupLog(true, "secret1", "secret2")
	})

	t.Run("empty secret skipped", func(t *testing.T) {
		setupLog(false, "")
	})
}
