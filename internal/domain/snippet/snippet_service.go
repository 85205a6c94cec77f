package snippet

import (
	"context"
	"strings"
	"time"

	"fixster-server/internal/utils/idgen"
	"fixster-server/internal/utils/platformerrors"
)

// Service keeps a small most-recent-first list of analyzed snippets per user.
type Service struct {
	repo Repository
}

// NewService creates a new snippet service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record stores a snippet and trims the user's list back to MaxRecent.
// Blank code is ignored rather than rejected; callers record opportunistically.
func (s *Service) Record(ctx context.Context, userID, code, language string) (*Snippet, error) {
	if strings.TrimSpace(code) == "" {
		return nil, nil
	}

	publicID, err := idgen.GenerateSecureID("snip", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to generate snippet ID")
	}

	snip := &Snippet{
		PublicID:  publicID,
		UserID:    userID,
		Code:      code,
		Language:  language,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, snip); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to record snippet")
	}

	if err := s.repo.TrimToNewest(ctx, userID, MaxRecent); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to trim snippet list")
	}

	return snip, nil
}

// List returns up to MaxRecent snippets, newest first. Unknown users get an
// empty slice.
func (s *Service) List(ctx context.Context, userID string) ([]*Snippet, error) {
	snippets, err := s.repo.ListByUserID(ctx, userID, MaxRecent)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list snippets")
	}
	if snippets == nil {
		snippets = []*Snippet{}
	}
	return snippets, nil
}

// TrimAll re-applies the cap for every user. Run by the maintenance cron as a
// guard against direct database writes.
func (s *Service) TrimAll(ctx context.Context) error {
	if err := s.repo.TrimAll(ctx, MaxRecent); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to trim snippet lists")
	}
	return nil
}
