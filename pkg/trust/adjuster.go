// Package trust maintains per-article trust weights folded from community
// vote feedback. Weights start at 1.0, move by a fixed step per vote and are
// clamped to configured bounds. Only the most recent vote per (actor,
// article) pair counts, and replaying the same event is a no-op.
package trust

import (
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/umputun/newsproof/pkg/domain"
)

const shardCount = 32

// Config holds the vote feedback policy
type Config struct {
	VoteStep float64 // weight change per vote
	MinBound float64 // lower clamp
	MaxBound float64 // upper clamp
}

// Adjuster is a concurrent trust-weight table, sharded by article ID so
// clamp-and-nudge updates are serialized per key without a global lock
type Adjuster struct {
	cfg    Config
	shards [shardCount]*shard
}

type shard struct {
	mu sync.RWMutex
	// articleID -> actor -> last counted vote
	votes map[string]map[string]domain.VoteEvent
}

// New creates an adjuster with the given policy. Zero config fields fall back
// to step 0.05 and bounds [0.5, 1.5].
func New(cfg Config) *Adjuster {
	if cfg.VoteStep == 0 {
		cfg.VoteStep = 0.05
	}
	if cfg.MinBound == 0 {
		cfg.MinBound = 0.5
	}
	if cfg.MaxBound == 0 {
		cfg.MaxBound = 1.5
	}

	a := &Adjuster{cfg: cfg}
	for i := range a.shards {
		a.shards[i] = &shard{votes: make(map[string]map[string]domain.VoteEvent)}
	}
	return a
}

// ApplyVote folds a vote event into the article's trust weight. A replay of
// an already counted event changes nothing; a newer vote from the same actor
// replaces that actor's earlier one. Events older than the actor's counted
// vote are dropped.
func (a *Adjuster) ApplyVote(event domain.VoteEvent) error {
	if event.ArticleID == "" {
		return fmt.Errorf("vote has no article id")
	}
	if !event.Direction.Valid() {
		return fmt.Errorf("invalid vote direction %q", event.Direction)
	}

	s := a.shardFor(event.ArticleID)
	s.mu.Lock()
	defer s.mu.Unlock()

	actors, ok := s.votes[event.ArticleID]
	if !ok {
		actors = make(map[string]domain.VoteEvent)
		s.votes[event.ArticleID] = actors
	}

	if prev, seen := actors[event.Actor]; seen && event.Timestamp.Before(prev.Timestamp) {
		return nil // stale event, the counted vote is newer
	}

	actors[event.Actor] = event
	return nil
}

// Weight returns the article's current trust weight, 1.0 for articles with
// no feedback history. The weight is derived from the net of the latest vote
// per actor and clamped to the configured bounds, so vote spam from a single
// actor cannot run the weight away.
func (a *Adjuster) Weight(articleID string) float64 {
	s := a.shardFor(articleID)
	s.mu.RLock()
	defer s.mu.RUnlock()

	net := 0
	for _, v := range s.votes[articleID] {
		if v.Direction == domain.VoteUp {
			net++
		} else {
			net--
		}
	}

	return a.clamp(1.0 + a.cfg.VoteStep*float64(net))
}

// Seed installs previously recorded votes, used to rebuild state on startup
func (a *Adjuster) Seed(events []domain.VoteEvent) {
	for _, e := range events {
		_ = a.ApplyVote(e) // invalid stored events are skipped
	}
}

func (a *Adjuster) clamp(w float64) float64 {
	if w < a.cfg.MinBound {
		return a.cfg.MinBound
	}
	if w > a.cfg.MaxBound {
		return a.cfg.MaxBound
	}
	return w
}

func (a *Adjuster) shardFor(articleID string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(articleID))
	return a.shards[h.Sum32()%shardCount]
}
