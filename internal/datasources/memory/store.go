// Package memory is a process-local implementation of every datasource, for development and tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/mutualmatch/mutual-backend/internal/datasources"
	"github.com/mutualmatch/mutual-backend/internal/domain"
)

var _ datasources.DatasetRepository = (*Store)(nil)

type voteKey struct {
	voter, target domain.UserID
}

type Store struct {
	mu       sync.RWMutex
	users    map[domain.UserID]domain.UserSummary
	subjects map[string]domain.UserID
	votes    map[voteKey]domain.Vote
	matches  map[domain.Pair]domain.Match
	messages map[domain.Pair][]domain.Message
	nextID   int64
	now      func() time.Time
}

func New() *Store {
	return &Store{
		users:    map[domain.UserID]domain.UserSummary{},
		subjects: map[string]domain.UserID{},
		votes:    map[voteKey]domain.Vote{},
		matches:  map[domain.Pair]domain.Match{},
		messages: map[domain.Pair][]domain.Message{},
		now:      time.Now,
	}
}

// AddUser registers a user in the directory, optionally linked to identity provider subjects.
func (s *Store) AddUser(user domain.UserSummary, subjects ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.ID] = user
	for _, subject := range subjects {
		s.subjects[subject] = user.ID
	}
}

func (s *Store) ResolveUser(_ context.Context, id domain.UserID) (domain.UserSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return domain.UserSummary{}, domain.ErrUnknownUser
	}
	return user, nil
}

func (s *Store) ResolveUserBySubject(_ context.Context, subject string) (domain.UserSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.subjects[subject]
	if !ok {
		return domain.UserSummary{}, domain.ErrUnknownUser
	}
	return s.users[id], nil
}

// RecordVote applies the vote and any resulting match under the store lock. A cancelled context
// writes nothing, as a rolled back transaction would.
func (s *Store) RecordVote(ctx context.Context, vote domain.Vote) (datasources.VoteOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return datasources.VoteOutcome{}, err
	}

	key := voteKey{voter: vote.VoterID, target: vote.TargetID}
	if current, ok := s.votes[key]; ok && current.Value == vote.Value {
		return datasources.VoteOutcome{}, nil
	}
	if vote.VotedAt.IsZero() {
		vote.VotedAt = s.now().UTC()
	}
	s.votes[key] = vote

	outcome := datasources.VoteOutcome{Changed: true}
	if vote.Value != domain.VoteLike {
		return outcome, nil
	}
	reverse, ok := s.votes[voteKey{voter: vote.TargetID, target: vote.VoterID}]
	if !ok || reverse.Value != domain.VoteLike {
		return outcome, nil
	}

	if match, err := s.insertMatchLocked(domain.NewPair(vote.VoterID, vote.TargetID)); err == nil {
		outcome.Match = &match
	}
	return outcome, nil
}

func (s *Store) ListVotesByVoter(
	_ context.Context, voterID domain.UserID, value domain.VoteValue, page, pageSize int,
) ([]domain.Vote, error) {
	s.mu.RLock()
	votes := []domain.Vote{}
	for key, vote := range s.votes {
		if key.voter == voterID && vote.Value == value {
			votes = append(votes, vote)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(votes, func(a, b domain.Vote) int {
		return b.VotedAt.Compare(a.VotedAt)
	})
	return paginate(votes, page, pageSize), nil
}

// AddMatch registers a match for pair if it has none.
func (s *Store) AddMatch(pair domain.Pair) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.insertMatchLocked(pair)
}

func (s *Store) insertMatchLocked(pair domain.Pair) (domain.Match, error) {
	if _, ok := s.matches[pair]; ok {
		return domain.Match{}, datasources.ErrMatchExists
	}
	match := domain.Match{Pair: pair, MatchedAt: s.now().UTC()}
	s.matches[pair] = match
	return match, nil
}

func (s *Store) MatchExists(_ context.Context, pair domain.Pair) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.matches[pair]
	return ok, nil
}

func (s *Store) ListUserMatches(
	_ context.Context, userID domain.UserID, page, pageSize int,
) ([]domain.Match, error) {
	s.mu.RLock()
	matches := []domain.Match{}
	for pair, match := range s.matches {
		if pair.Contains(userID) {
			matches = append(matches, match)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(matches, func(a, b domain.Match) int {
		return b.MatchedAt.Compare(a.MatchedAt)
	})
	return paginate(matches, page, pageSize), nil
}

func (s *Store) CreateMessage(_ context.Context, msg domain.Message) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	msg.ID = s.nextID
	msg.SentAt = s.now().UTC()
	s.messages[msg.Room] = append(s.messages[msg.Room], msg)
	return msg, nil
}

func (s *Store) ListRoomMessages(
	_ context.Context, room domain.Pair, page, pageSize int,
) ([]domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return paginate(slices.Clone(s.messages[room]), page, pageSize), nil
}

// CountVotes returns the number of stored votes cast by voterID on targetID (0 or 1).
func (s *Store) CountVotes(voterID, targetID domain.UserID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.votes[voteKey{voter: voterID, target: targetID}]; ok {
		return 1
	}
	return 0
}

// CountMatches returns the number of stored matches.
func (s *Store) CountMatches() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.matches)
}

func paginate[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}
