package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/mutualmatch/mutual-backend/internal/datasources"
	"github.com/mutualmatch/mutual-backend/internal/domain"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

// maxVoteAttempts bounds retries of a vote transaction that lost a deadlock.
const maxVoteAttempts = 3

type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// ============================================
// User Directory
// ============================================

func (r *Repository) ResolveUser(ctx context.Context, id domain.UserID) (domain.UserSummary, error) {
	sb := sqlbuilder.Select("id", "username")
	sb.From("users")
	sb.Where(sb.Equal("id", int64(id)))

	query, args := sb.Build()
	return scanUser(r.db.QueryRowContext(ctx, query, args...))
}

func (r *Repository) ResolveUserBySubject(ctx context.Context, subject string) (domain.UserSummary, error) {
	sb := sqlbuilder.Select("id", "username")
	sb.From("users")
	sb.Where(sb.Equal("auth_subject", subject))

	query, args := sb.Build()
	return scanUser(r.db.QueryRowContext(ctx, query, args...))
}

func scanUser(row *sql.Row) (domain.UserSummary, error) {
	var id int64
	var user domain.UserSummary
	if err := row.Scan(&id, &user.Username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.UserSummary{}, domain.ErrUnknownUser
		}
		return domain.UserSummary{}, fmt.Errorf("fetching user: %w", err)
	}
	user.ID = domain.UserID(id)
	return user, nil
}

// ============================================
// Vote Store
// ============================================

// RecordVote runs the upsert, the reverse-vote read and the match insert in one transaction, so a
// failure at any step leaves neither the vote nor the match behind. The reverse vote is read with a
// shared lock: of two concurrent reciprocal likes one waits for the other, or InnoDB rolls one back
// as a deadlock and it is retried.
func (r *Repository) RecordVote(ctx context.Context, vote domain.Vote) (datasources.VoteOutcome, error) {
	var err error
	for attempt := 1; attempt <= maxVoteAttempts; attempt++ {
		var outcome datasources.VoteOutcome
		outcome, err = r.recordVoteOnce(ctx, vote)
		if err == nil {
			return outcome, nil
		}
		if !isDeadlock(err) {
			return datasources.VoteOutcome{}, err
		}
		domain.LoggerFromContext(ctx).WarnContext(ctx, "vote transaction deadlocked, retrying", "attempt", attempt)
	}
	return datasources.VoteOutcome{}, err
}

func (r *Repository) recordVoteOnce(ctx context.Context, vote domain.Vote) (datasources.VoteOutcome, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return datasources.VoteOutcome{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := lockedVote(ctx, tx, vote.VoterID, vote.TargetID, true)
	if err != nil {
		return datasources.VoteOutcome{}, fmt.Errorf("getting current vote: %w", err)
	}
	if current != nil && *current == vote.Value {
		return datasources.VoteOutcome{}, nil
	}

	votedAt := vote.VotedAt
	if votedAt.IsZero() {
		votedAt = r.now()
	}

	ib := sqlbuilder.InsertInto("votes")
	ib.Cols("voter_id", "target_id", "vote", "voted_at")
	ib.Values(int64(vote.VoterID), int64(vote.TargetID), int(vote.Value), votedAt.UTC())
	ib.SQL("ON DUPLICATE KEY UPDATE vote = VALUES(vote), voted_at = VALUES(voted_at)")

	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return datasources.VoteOutcome{}, fmt.Errorf("upserting vote: %w", err)
	}

	outcome := datasources.VoteOutcome{Changed: true}
	if vote.Value == domain.VoteLike {
		reverse, err := lockedVote(ctx, tx, vote.TargetID, vote.VoterID, false)
		if err != nil {
			return datasources.VoteOutcome{}, fmt.Errorf("getting reverse vote: %w", err)
		}

		if reverse != nil && *reverse == domain.VoteLike {
			match, err := r.insertMatch(ctx, tx, domain.NewPair(vote.VoterID, vote.TargetID))
			switch {
			case errors.Is(err, datasources.ErrMatchExists):
			case err != nil:
				return datasources.VoteOutcome{}, err
			default:
				outcome.Match = &match
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return datasources.VoteOutcome{}, fmt.Errorf("committing transaction: %w", err)
	}

	return outcome, nil
}

// lockedVote reads a vote value inside tx, locking the row for update or for share.
func lockedVote(
	ctx context.Context, tx *sql.Tx, voterID, targetID domain.UserID, forUpdate bool,
) (*domain.VoteValue, error) {
	sb := sqlbuilder.Select("vote")
	sb.From("votes")
	sb.Where(
		sb.Equal("voter_id", int64(voterID)),
		sb.Equal("target_id", int64(targetID)),
	)
	if forUpdate {
		sb.ForUpdate()
	} else {
		sb.ForShare()
	}

	query, args := sb.Build()
	var value int
	err := tx.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	v := domain.VoteValue(value)
	return &v, nil
}

func (r *Repository) ListVotesByVoter(
	ctx context.Context, voterID domain.UserID, value domain.VoteValue, page, pageSize int,
) ([]domain.Vote, error) {
	limit, offset := paginationToLimitOffset(page, pageSize)

	sb := sqlbuilder.Select("target_id", "voted_at")
	sb.From("votes")
	sb.Where(
		sb.Equal("voter_id", int64(voterID)),
		sb.Equal("vote", int(value)),
	)
	sb.OrderBy("voted_at").Desc()
	sb.Limit(int(limit))
	sb.Offset(int(offset))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running votes query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	votes := []domain.Vote{}
	for rows.Next() {
		var targetID int64
		var votedAt time.Time
		if err := rows.Scan(&targetID, &votedAt); err != nil {
			return nil, fmt.Errorf("scanning votes: %w", err)
		}
		votes = append(votes, domain.Vote{
			VoterID:  voterID,
			TargetID: domain.UserID(targetID),
			Value:    value,
			VotedAt:  votedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return votes, nil
}

// ============================================
// Match Store
// ============================================

// insertMatch relies on the primary key over the canonical pair. A duplicate entry is reported as
// datasources.ErrMatchExists and does not abort the surrounding transaction.
func (r *Repository) insertMatch(ctx context.Context, tx *sql.Tx, pair domain.Pair) (domain.Match, error) {
	match := domain.Match{Pair: pair, MatchedAt: r.now().UTC()}

	ib := sqlbuilder.InsertInto("matches")
	ib.Cols("user_low_id", "user_high_id", "matched_at")
	ib.Values(int64(pair.Low), int64(pair.High), match.MatchedAt)

	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if isDuplicateEntry(err) {
			return domain.Match{}, datasources.ErrMatchExists
		}
		return domain.Match{}, fmt.Errorf("inserting match: %w", err)
	}

	return match, nil
}

func (r *Repository) MatchExists(ctx context.Context, pair domain.Pair) (bool, error) {
	sb := sqlbuilder.Select("1")
	sb.From("matches")
	sb.Where(
		sb.Equal("user_low_id", int64(pair.Low)),
		sb.Equal("user_high_id", int64(pair.High)),
	)
	sb.Limit(1)

	query, args := sb.Build()
	var one int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking match: %w", err)
	}
	return true, nil
}

func (r *Repository) ListUserMatches(
	ctx context.Context, userID domain.UserID, page, pageSize int,
) ([]domain.Match, error) {
	limit, offset := paginationToLimitOffset(page, pageSize)

	sb := sqlbuilder.Select("user_low_id", "user_high_id", "matched_at")
	sb.From("matches")
	sb.Where(sb.Or(
		sb.Equal("user_low_id", int64(userID)),
		sb.Equal("user_high_id", int64(userID)),
	))
	sb.OrderBy("matched_at").Desc()
	sb.Limit(int(limit))
	sb.Offset(int(offset))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running matches query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	matches := []domain.Match{}
	for rows.Next() {
		var low, high int64
		var matchedAt time.Time
		if err := rows.Scan(&low, &high, &matchedAt); err != nil {
			return nil, fmt.Errorf("scanning matches: %w", err)
		}
		matches = append(matches, domain.Match{
			Pair:      domain.Pair{Low: domain.UserID(low), High: domain.UserID(high)},
			MatchedAt: matchedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return matches, nil
}

// ============================================
// Message Store
// ============================================

func (r *Repository) CreateMessage(ctx context.Context, msg domain.Message) (domain.Message, error) {
	msg.SentAt = r.now().UTC()

	ib := sqlbuilder.InsertInto("messages")
	ib.Cols("room_low_id", "room_high_id", "sender_id", "content", "sent_at")
	ib.Values(int64(msg.Room.Low), int64(msg.Room.High), int64(msg.SenderID), msg.Content, msg.SentAt)

	query, args := ib.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Message{}, fmt.Errorf("inserting message: %w", err)
	}

	msg.ID, err = res.LastInsertId()
	if err != nil {
		return domain.Message{}, fmt.Errorf("reading message id: %w", err)
	}

	return msg, nil
}

func (r *Repository) ListRoomMessages(
	ctx context.Context, room domain.Pair, page, pageSize int,
) ([]domain.Message, error) {
	limit, offset := paginationToLimitOffset(page, pageSize)

	sb := sqlbuilder.Select("id", "sender_id", "content", "sent_at")
	sb.From("messages")
	sb.Where(
		sb.Equal("room_low_id", int64(room.Low)),
		sb.Equal("room_high_id", int64(room.High)),
	)
	sb.OrderBy("sent_at", "id").Asc()
	sb.Limit(int(limit))
	sb.Offset(int(offset))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running messages query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	messages := []domain.Message{}
	for rows.Next() {
		var senderID int64
		msg := domain.Message{Room: room}
		if err := rows.Scan(&msg.ID, &senderID, &msg.Content, &msg.SentAt); err != nil {
			return nil, fmt.Errorf("scanning messages: %w", err)
		}
		msg.SenderID = domain.UserID(senderID)
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return messages, nil
}

// paginationToLimitOffset converts page/pageSize to limit/offset with bounds checking.
// Clamps values to int32 range to prevent overflow.
func paginationToLimitOffset(page, pageSize int) (limit, offset int32) {
	if pageSize > math.MaxInt32 {
		pageSize = math.MaxInt32
	}
	limit = int32(pageSize) //nolint:gosec // bounds checked above

	off := (page - 1) * pageSize
	if off > math.MaxInt32 {
		off = math.MaxInt32
	}
	offset = int32(off) //nolint:gosec // bounds checked above

	return limit, offset
}
