package domain

import "fmt"

// Pair is an unordered pair of users in canonical form: Low < High.
// Match records and chat rooms are both keyed by it.
type Pair struct {
	Low  UserID
	High UserID
}

// NewPair is the only ordering function for user pairs; (a, b) and (b, a) produce the same Pair.
func NewPair(a, b UserID) Pair {
	if a < b {
		return Pair{Low: a, High: b}
	}
	return Pair{Low: b, High: a}
}

// Key is the deterministic room identifier of the pair.
func (p Pair) Key() string {
	return fmt.Sprintf("%d_%d", p.Low, p.High)
}

// GroupName is the broadcast group all sessions of the room subscribe to.
func (p Pair) GroupName() string {
	return "chat_" + p.Key()
}

// Contains reports whether id is one of the participants.
func (p Pair) Contains(id UserID) bool {
	return p.Low == id || p.High == id
}

// Other returns the participant that is not id.
func (p Pair) Other(id UserID) UserID {
	if p.Low == id {
		return p.High
	}
	return p.Low
}
