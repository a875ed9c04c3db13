package postgres

import "time"

type userRow struct {
	ID          int64   `gorm:"primaryKey"`
	Username    string  `gorm:"size:150;not null;uniqueIndex"`
	AuthSubject *string `gorm:"size:255;uniqueIndex"`
}

func (userRow) TableName() string { return "users" }

type voteRow struct {
	VoterID  int64     `gorm:"primaryKey;autoIncrement:false;index:votes_voter_value,priority:1"`
	TargetID int64     `gorm:"primaryKey;autoIncrement:false;index:votes_target"`
	Vote     int16     `gorm:"not null;index:votes_voter_value,priority:2"`
	VotedAt  time.Time `gorm:"not null;index:votes_voter_value,priority:3"`
}

func (voteRow) TableName() string { return "votes" }

// matchRow's composite primary key over the canonical pair is the uniqueness constraint
// that makes concurrent match creation safe.
type matchRow struct {
	UserLowID  int64     `gorm:"primaryKey;autoIncrement:false"`
	UserHighID int64     `gorm:"primaryKey;autoIncrement:false;index"`
	MatchedAt  time.Time `gorm:"not null"`
}

func (matchRow) TableName() string { return "matches" }

type messageRow struct {
	ID         int64     `gorm:"primaryKey"`
	RoomLowID  int64     `gorm:"not null;index:messages_room,priority:1"`
	RoomHighID int64     `gorm:"not null;index:messages_room,priority:2"`
	SenderID   int64     `gorm:"not null"`
	Content    string    `gorm:"type:text;not null"`
	SentAt     time.Time `gorm:"not null;index:messages_room,priority:3"`
}

func (messageRow) TableName() string { return "messages" }
