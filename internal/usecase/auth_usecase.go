package usecase

import (
	"context"
	"errors"
	"net/http"
	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
	"rental_console/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrPermissionDenied   = errors.New("permission denied")
)

const defaultSessionTTL = 12 * time.Hour

// IAuthUseCase logs operators in and out.
//
// A session is the only operator state the console keeps. It is created on
// login, read on every request and removed on logout or expiry.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (entities.Session, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (entities.Session, error)
}

type AuthUseCase struct {
	members  interfaces.ITeamMemberAPI
	sessions interfaces.ISessionRepository
	ttl      time.Duration
	now      func() time.Time
	log      logrus.FieldLogger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(members interfaces.ITeamMemberAPI, sessions interfaces.ISessionRepository, ttl time.Duration, logger logrus.FieldLogger) *AuthUseCase {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthUseCase{members: members, sessions: sessions, ttl: ttl, now: time.Now, log: loggerOrDiscard(logger)}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validEmail("email", email); err != nil {
		return entities.Session{}, err
	}
	if password == "" {
		return entities.Session{}, errs.Invalid("password", "is required")
	}

	member, err := u.members.Login(ctx, email, password)
	if err != nil {
		var re *errs.RemoteError
		if errors.As(err, &re) && isCredentialStatus(re.StatusCode) {
			u.log.WithField("email", email).Warn("[auth][usecase] login rejected")
			return entities.Session{}, ErrInvalidCredentials
		}
		u.log.WithFields(logrus.Fields{"email": email, "err": err}).Error("[auth][usecase] login failed")
		return entities.Session{}, err
	}
	if member.ID == "" {
		return entities.Session{}, ErrInvalidCredentials
	}

	now := u.now().UTC()
	s := entities.Session{
		Token:       uuid.NewString(),
		MemberID:    member.ID,
		Name:        member.Name,
		Email:       member.Email,
		Permissions: member.Permissions,
		CreatedAt:   now,
		ExpiresAt:   now.Add(u.ttl),
	}
	if s.Email == "" {
		s.Email = email
	}
	if err := u.sessions.Save(ctx, s); err != nil {
		u.log.WithFields(logrus.Fields{"member_id": member.ID, "err": err}).Error("[auth][usecase] session save failed")
		return entities.Session{}, err
	}
	u.log.WithFields(logrus.Fields{"member_id": member.ID, "permissions": s.Permissions.Granted()}).Info("[auth][usecase] logged in")
	return s, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrSessionNotFound
	}
	return u.sessions.Delete(ctx, token)
}

func (u *AuthUseCase) Resolve(ctx context.Context, token string) (entities.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	s, err := u.sessions.Get(ctx, token)
	if err != nil {
		return entities.Session{}, err
	}
	if s.Token == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	if s.Expired(u.now()) {
		if err := u.sessions.Delete(ctx, token); err != nil {
			u.log.WithFields(logrus.Fields{"member_id": s.MemberID, "err": err}).Warn("[auth][usecase] expired session cleanup failed")
		}
		return entities.Session{}, ErrSessionExpired
	}
	return s, nil
}

func isCredentialStatus(code int) bool {
	switch code {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return true
	}
	return false
}
