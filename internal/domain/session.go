package domain

import (
	"fmt"
	"time"
)

// Session is a single recorded login/logout interval for a user.
// A zero LogoutAt means the session has not concluded.
type Session struct {
	LoginAt  time.Time
	LogoutAt time.Time
}

// NewSession validates that the interval has strictly positive length.
// Zero-length and inverted intervals are never stored.
func NewSession(loginAt, logoutAt time.Time) (Session, error) {
	if !loginAt.Before(logoutAt) {
		return Session{}, fmt.Errorf("%w: login %s not before logout %s", ErrInvalidTimeRange, loginAt.Format(time.RFC3339), logoutAt.Format(time.RFC3339))
	}
	return Session{LoginAt: loginAt, LogoutAt: logoutAt}, nil
}

func (s Session) Concluded() bool {
	return !s.LogoutAt.IsZero()
}

// DurationMinutes is the session length in whole minutes, truncated.
func (s Session) DurationMinutes() int64 {
	if !s.Concluded() {
		return 0
	}
	return int64(s.LogoutAt.Sub(s.LoginAt) / time.Minute)
}

// LatestLogout returns the concluded session with the maximum logout time.
// Insertion order of the input is irrelevant.
func LatestLogout(sessions []Session) (Session, bool) {
	var latest Session
	found := false
	for _, session := range sessions {
		if !session.Concluded() {
			continue
		}
		if !found || session.LogoutAt.After(latest.LogoutAt) {
			latest = session
			found = true
		}
	}
	return latest, found
}
