package snippet

import (
	"context"
	"time"
)

// MaxRecent caps how many snippets are kept per user, most recent first.
const MaxRecent = 5

// Snippet is one recently analyzed piece of code, unscoped by project.
type Snippet struct {
	ID        uint      `json:"-"`
	PublicID  string    `json:"id"`
	UserID    string    `json:"-"`
	Code      string    `json:"code"`
	Language  string    `json:"language,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository persists per-user recent snippets.
type Repository interface {
	Create(ctx context.Context, snip *Snippet) error
	ListByUserID(ctx context.Context, userID string, limit int) ([]*Snippet, error)
	TrimToNewest(ctx context.Context, userID string, keep int) error
	TrimAll(ctx context.Context, keep int) error
}
