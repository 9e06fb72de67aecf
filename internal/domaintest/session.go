package domaintest

import (
	"time"

	"github.com/Amund211/beacon/internal/domain"
)

type sessionBuilder struct {
	session *domain.Session
}

func (sb *sessionBuilder) WithDuration(duration time.Duration) *sessionBuilder {
	sb.session.LogoutAt = sb.session.LoginAt.Add(duration)
	return sb
}

func (sb *sessionBuilder) WithLogoutAt(logoutAt time.Time) *sessionBuilder {
	sb.session.LogoutAt = logoutAt
	return sb
}

func (sb *sessionBuilder) Unconcluded() *sessionBuilder {
	sb.session.LogoutAt = time.Time{}
	return sb
}

func (sb *sessionBuilder) Build() domain.Session {
	return *sb.session
}

func NewSessionBuilder(loginAt time.Time) *sessionBuilder {
	session := &domain.Session{
		LoginAt:  loginAt,
		LogoutAt: loginAt.Add(time.Hour),
	}
	return &sessionBuilder{
		session: session,
	}
}
