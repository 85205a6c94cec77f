package snippet

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	mu       sync.Mutex
	nextID   uint
	snippets []*Snippet
}

func (r *memoryRepository) Create(ctx context.Context, snip *Snippet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	snip.ID = r.nextID
	clone := *snip
	r.snippets = append(r.snippets, &clone)
	return nil
}

func (r *memoryRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]*Snippet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Snippet
	for _, s := range r.snippets {
		if s.UserID == userID {
			clone := *s
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryRepository) TrimToNewest(ctx context.Context, userID string, keep int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var mine []*Snippet
	for _, s := range r.snippets {
		if s.UserID == userID {
			mine = append(mine, s)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].ID > mine[j].ID })
	drop := make(map[uint]bool)
	for i := keep; i < len(mine); i++ {
		drop[mine[i].ID] = true
	}
	var kept []*Snippet
	for _, s := range r.snippets {
		if !drop[s.ID] {
			kept = append(kept, s)
		}
	}
	r.snippets = kept
	return nil
}

func (r *memoryRepository) TrimAll(ctx context.Context, keep int) error {
	users := map[string]bool{}
	r.mu.Lock()
	for _, s := range r.snippets {
		users[s.UserID] = true
	}
	r.mu.Unlock()
	for userID := range users {
		if err := r.TrimToNewest(ctx, userID, keep); err != nil {
			return err
		}
	}
	return nil
}

func TestRecordCapsAtFive(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memoryRepository{})

	for i := 0; i < 8; i++ {
		_, err := svc.Record(ctx, "user_1", fmt.Sprintf("console.log(%d)", i), "javascript")
		require.NoError(t, err)
	}

	snippets, err := svc.List(ctx, "user_1")
	require.NoError(t, err)
	require.Len(t, snippets, MaxRecent)

	// Most recent first: 7, 6, 5, 4, 3.
	assert.Equal(t, "console.log(7)", snippets[0].Code)
	assert.Equal(t, "console.log(3)", snippets[len(snippets)-1].Code)
}

func TestRecordIgnoresBlankCode(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memoryRepository{})

	snip, err := svc.Record(ctx, "user_1", "   \n", "")
	require.NoError(t, err)
	assert.Nil(t, snip)

	snippets, err := svc.List(ctx, "user_1")
	require.NoError(t, err)
	assert.Empty(t, snippets)
}

func TestListScopedByUser(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memoryRepository{})

	_, err := svc.Record(ctx, "user_1", "print('a')", "python")
	require.NoError(t, err)
	_, err = svc.Record(ctx, "user_2", "print('b')", "python")
	require.NoError(t, err)

	snippets, err := svc.List(ctx, "user_1")
	require.NoError(t, err)
	require.Len(t, snippets, 1)
	assert.Equal(t, "print('a')", snippets[0].Code)

	empty, err := svc.List(ctx, "user_3")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
