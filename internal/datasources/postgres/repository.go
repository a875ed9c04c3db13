package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mutualmatch/mutual-backend/internal/datasources"
	"github.com/mutualmatch/mutual-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

func (r *Repository) ResolveUser(ctx context.Context, id domain.UserID) (domain.UserSummary, error) {
	var row userRow
	err := r.db.WithContext(ctx).Where("id = ?", int64(id)).Take(&row).Error
	return userFromRow(row, err)
}

func (r *Repository) ResolveUserBySubject(ctx context.Context, subject string) (domain.UserSummary, error) {
	var row userRow
	err := r.db.WithContext(ctx).Where("auth_subject = ?", subject).Take(&row).Error
	return userFromRow(row, err)
}

func userFromRow(row userRow, err error) (domain.UserSummary, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserSummary{}, domain.ErrUnknownUser
	}
	if err != nil {
		return domain.UserSummary{}, fmt.Errorf("fetching user: %w", err)
	}
	return domain.UserSummary{ID: domain.UserID(row.ID), Username: row.Username}, nil
}

// RecordVote stores vote and, for a reciprocated like, inserts the match in the same
// transaction. The pair advisory lock serializes the two voters of a pair so that
// concurrent reciprocal likes cannot both miss each other under READ COMMITTED.
func (r *Repository) RecordVote(ctx context.Context, vote domain.Vote) (datasources.VoteOutcome, error) {
	var outcome datasources.VoteOutcome
	pair := domain.NewPair(vote.VoterID, vote.TargetID)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", pair.Key()).Error; err != nil {
			return fmt.Errorf("locking pair: %w", err)
		}

		var current voteRow
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("voter_id = ? AND target_id = ?", int64(vote.VoterID), int64(vote.TargetID)).
			Take(&current).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			return fmt.Errorf("getting current vote: %w", err)
		case domain.VoteValue(current.Vote) == vote.Value:
			return nil
		}

		votedAt := vote.VotedAt
		if votedAt.IsZero() {
			votedAt = r.now()
		}
		row := voteRow{
			VoterID:  int64(vote.VoterID),
			TargetID: int64(vote.TargetID),
			Vote:     int16(vote.Value),
			VotedAt:  votedAt.UTC(),
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "voter_id"}, {Name: "target_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"vote", "voted_at"}),
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("upserting vote: %w", err)
		}
		outcome.Changed = true

		if vote.Value != domain.VoteLike {
			return nil
		}
		var reverse voteRow
		err = tx.Where("voter_id = ? AND target_id = ?", int64(vote.TargetID), int64(vote.VoterID)).
			Take(&reverse).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil
		case err != nil:
			return fmt.Errorf("fetching reverse vote: %w", err)
		case domain.VoteValue(reverse.Vote) != domain.VoteLike:
			return nil
		}

		match, err := r.insertMatch(tx, pair)
		switch {
		case errors.Is(err, datasources.ErrMatchExists):
		case err != nil:
			return err
		default:
			outcome.Match = &match
		}
		return nil
	})
	if err != nil {
		return datasources.VoteOutcome{}, err
	}
	return outcome, nil
}

// insertMatch skips conflicting rows so that an existing match does not abort tx.
func (r *Repository) insertMatch(tx *gorm.DB, pair domain.Pair) (domain.Match, error) {
	row := matchRow{
		UserLowID:  int64(pair.Low),
		UserHighID: int64(pair.High),
		MatchedAt:  r.now().UTC(),
	}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if res.Error != nil {
		return domain.Match{}, fmt.Errorf("inserting match: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.Match{}, datasources.ErrMatchExists
	}
	return domain.Match{Pair: pair, MatchedAt: row.MatchedAt}, nil
}

func (r *Repository) ListVotesByVoter(
	ctx context.Context, voterID domain.UserID, value domain.VoteValue, page, pageSize int,
) ([]domain.Vote, error) {
	var rows []voteRow
	if err := r.db.WithContext(ctx).
		Where("voter_id = ? AND vote = ?", int64(voterID), int16(value)).
		Order("voted_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("running votes query: %w", err)
	}

	votes := make([]domain.Vote, 0, len(rows))
	for _, row := range rows {
		votes = append(votes, voteFromRow(row))
	}
	return votes, nil
}

func voteFromRow(row voteRow) domain.Vote {
	return domain.Vote{
		VoterID:  domain.UserID(row.VoterID),
		TargetID: domain.UserID(row.TargetID),
		Value:    domain.VoteValue(row.Vote),
		VotedAt:  row.VotedAt,
	}
}

func (r *Repository) MatchExists(ctx context.Context, pair domain.Pair) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&matchRow{}).
		Where("user_low_id = ? AND user_high_id = ?", int64(pair.Low), int64(pair.High)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking match: %w", err)
	}
	return count > 0, nil
}

func (r *Repository) ListUserMatches(
	ctx context.Context, userID domain.UserID, page, pageSize int,
) ([]domain.Match, error) {
	var rows []matchRow
	if err := r.db.WithContext(ctx).
		Where("user_low_id = ? OR user_high_id = ?", int64(userID), int64(userID)).
		Order("matched_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("running matches query: %w", err)
	}

	matches := make([]domain.Match, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, domain.Match{
			Pair:      domain.Pair{Low: domain.UserID(row.UserLowID), High: domain.UserID(row.UserHighID)},
			MatchedAt: row.MatchedAt,
		})
	}
	return matches, nil
}

func (r *Repository) CreateMessage(ctx context.Context, msg domain.Message) (domain.Message, error) {
	row := messageRow{
		RoomLowID:  int64(msg.Room.Low),
		RoomHighID: int64(msg.Room.High),
		SenderID:   int64(msg.SenderID),
		Content:    msg.Content,
		SentAt:     r.now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Message{}, fmt.Errorf("inserting message: %w", err)
	}

	msg.ID = row.ID
	msg.SentAt = row.SentAt
	return msg, nil
}

func (r *Repository) ListRoomMessages(
	ctx context.Context, room domain.Pair, page, pageSize int,
) ([]domain.Message, error) {
	var rows []messageRow
	if err := r.db.WithContext(ctx).
		Where("room_low_id = ? AND room_high_id = ?", int64(room.Low), int64(room.High)).
		Order("sent_at ASC, id ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("running messages query: %w", err)
	}

	messages := make([]domain.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, domain.Message{
			ID:       row.ID,
			Room:     room,
			SenderID: domain.UserID(row.SenderID),
			Content:  row.Content,
			SentAt:   row.SentAt,
		})
	}
	return messages, nil
}
