package datasources

import (
	"context"

	"github.com/mutualmatch/mutual-backend/internal/domain"
)

// UserResolver looks a user up in the user directory.
// Returns domain.ErrUnknownUser if the id does not exist.
type UserResolver interface {
	ResolveUser(ctx context.Context, id domain.UserID) (domain.UserSummary, error)
}

// UserBySubjectResolver maps an identity provider subject to a user.
// Returns domain.ErrUnknownUser if no user is linked to the subject.
type UserBySubjectResolver interface {
	ResolveUserBySubject(ctx context.Context, subject string) (domain.UserSummary, error)
}

type UserRepository interface {
	UserResolver
	UserBySubjectResolver
}
