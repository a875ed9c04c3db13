package domain

import "time"

// Match records mutual likes between the two users of Pair. It is created once and never changed.
type Match struct {
	Pair      Pair
	MatchedAt time.Time
}

// MatchView is a match as seen by one of its participants.
type MatchView struct {
	User      UserSummary `json:"user"`
	RoomID    string      `json:"room_id"`
	MatchedAt time.Time   `json:"matched_at"`
}
