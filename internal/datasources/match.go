package datasources

import (
	"context"

	"github.com/mutualmatch/mutual-backend/internal/domain"
)

// MatchChecker reports whether pair has a match.
type MatchChecker interface {
	MatchExists(ctx context.Context, pair domain.Pair) (bool, error)
}

// UserMatchLister lists the matches a user takes part in, newest first.
type UserMatchLister interface {
	ListUserMatches(ctx context.Context, userID domain.UserID, page, pageSize int) ([]domain.Match, error)
}

type MatchRepository interface {
	MatchChecker
	UserMatchLister
}
