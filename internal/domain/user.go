package domain

import (
	"fmt"
	"strconv"
)

// UserID identifies a user. Identities are totally ordered numerically.
type UserID int64

// AnonymousUserID is the identity of an unauthenticated caller.
const AnonymousUserID UserID = 0

func (id UserID) IsAnonymous() bool {
	return id <= AnonymousUserID
}

func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseUserID parses a user ID from a route parameter or token claim.
func ParseUserID(s string) (UserID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return AnonymousUserID, fmt.Errorf("parsing user id [%s]: %w", s, err)
	}
	if v <= 0 {
		return AnonymousUserID, fmt.Errorf("invalid user id [%d]", v)
	}
	return UserID(v), nil
}

// UserSummary is the slice of a profile this service needs from the user directory.
type UserSummary struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
}
