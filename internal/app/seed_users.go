package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mutualmatch/mutual-backend/internal/domain"
)

// SeedUser is a user loaded into the in-memory store at startup.
type SeedUser struct {
	User     domain.UserSummary
	Subjects []string
}

// ParseSeedUsers parses "id:username[:subject],..." as used by MEMORY_USERS.
// Subjects may themselves contain colons, e.g. "1:ivan:auth0|abc".
func ParseSeedUsers(s string) ([]SeedUser, error) {
	var seeds []SeedUser
	seen := map[domain.UserID]bool{}

	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 3)
		if len(parts) < 2 || parts[1] == "" {
			return nil, fmt.Errorf("malformed user entry [%s]", entry)
		}

		id, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid user id in entry [%s]", entry)
		}
		if seen[domain.UserID(id)] {
			return nil, fmt.Errorf("duplicate user id [%d]", id)
		}
		seen[domain.UserID(id)] = true

		seed := SeedUser{User: domain.UserSummary{ID: domain.UserID(id), Username: parts[1]}}
		if len(parts) == 3 && parts[2] != "" {
			seed.Subjects = []string{parts[2]}
		}
		seeds = append(seeds, seed)
	}

	return seeds, nil
}
