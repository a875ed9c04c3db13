package domain

import "errors"

var (
	// ErrSelfInteraction is returned when a user votes on, or opens a chat with, themselves.
	ErrSelfInteraction = errors.New("you cannot interact with your own profile")
	// ErrInvalidVote is returned for a vote value other than 1 (like) or -1 (dislike).
	ErrInvalidVote = errors.New("invalid vote value, use 1 (like) or -1 (dislike)")
	// ErrUnknownUser is returned when a user id does not resolve in the user directory.
	ErrUnknownUser = errors.New("user not found")
	// ErrNoMatch is returned when two users without a match try to chat.
	ErrNoMatch = errors.New("users are not matched")
	// ErrEmptyMessage is returned for a chat message with no content.
	ErrEmptyMessage = errors.New("message must not be empty")
	// ErrUnauthenticated is returned when a connection carries no resolvable identity.
	ErrUnauthenticated = errors.New("authentication required")
)
