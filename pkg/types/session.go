package types

// Session is a play-time window. At most one session is active (no end
// timestamp) at a time; starting a new one force-ends the rest.
type Session struct {
	ID              string  `json:"id"`
	StartedAt       int64   `json:"startedAt"`
	EndedAt         *int64  `json:"endedAt"`
	DurationMinutes *int64  `json:"durationMinutes"`
	StartingBalance *int64  `json:"startingBalance"`
	EndingBalance   *int64  `json:"endingBalance"`
	Notes           *string `json:"notes"`
	CreatedAt       int64   `json:"createdAt"`
}

// Active reports whether the session has no end timestamp.
func (s *Session) Active() bool {
	return s.EndedAt == nil
}

// SessionPatch holds a partial update for a session.
type SessionPatch struct {
	StartedAt       *int64  `json:"startedAt"`
	StartingBalance *int64  `json:"startingBalance"`
	EndingBalance   *int64  `json:"endingBalance"`
	Notes           *string `json:"notes"`
}
