package flow

import (
	"context"
	"time"
)

// Kind identifies which multi-step interaction a token continues.
type Kind string

const (
	KindDeleteProject Kind = "delete_project"
	KindEditProject   Kind = "edit_project"
	KindEditEntry     Kind = "edit_entry"
)

// State is the server-side half of a correlation token: which flow is in
// progress, the entity it concerns, and who started it.
type State struct {
	Kind     Kind   `json:"kind"`
	EntityID uint   `json:"entity_id"`
	UserID   string `json:"user_id"`
}

// TTL bounds how long a pending select prompt or modal stays actionable.
const TTL = 15 * time.Minute

// Store hands out opaque tokens for in-flight interactive flows. Consume is
// one-shot: a token can be redeemed once, then it is gone. Unknown and
// expired tokens consume to nil.
type Store interface {
	Create(ctx context.Context, state State) (string, error)
	Consume(ctx context.Context, token string) (*State, error)
}
