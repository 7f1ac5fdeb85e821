package domain

import "time"

// VoteDirection is the direction of a community vote
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// VoteEvent is a single community vote on an article. Actor identity is
// supplied by the caller (the storage collaborator keys votes by actor and
// article); the pipeline itself performs no authentication.
type VoteEvent struct {
	ArticleID string        `json:"article_id"`
	Actor     string        `json:"actor"`
	Direction VoteDirection `json:"direction"`
	Timestamp time.Time     `json:"timestamp"`
}

// Valid reports whether the direction is one of the known values
func (d VoteDirection) Valid() bool {
	return d == VoteUp || d == VoteDown
}
