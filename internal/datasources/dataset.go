package datasources

import "errors"

// ErrMatchExists is returned by a repository's match insert when the pair already has a match.
// It is the losing side of a concurrent get-or-create and is absorbed inside RecordVote.
var ErrMatchExists = errors.New("match already exists for pair")

// DatasetRepository combines every persistence operation the service needs.
type DatasetRepository interface {
	UserRepository
	VoteRepository
	MatchRepository
	MessageRepository
}
