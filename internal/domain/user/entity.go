package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a directory record keyed by email. Users are created on first
// login and never deleted; subsequent logins refresh token and last_login.
type User struct {
	id         uuid.UUID
	email      Email
	name       string
	picture    string
	oauthToken string
	createdAt  time.Time
	lastLogin  time.Time
}

func NewUser(profile Profile, now time.Time) (*User, error) {
	email, err := NewEmail(profile.Email)
	if err != nil {
		return nil, err
	}

	return &User{
		id:         uuid.New(),
		email:      email,
		name:       profile.Name,
		picture:    profile.Picture,
		oauthToken: profile.Token,
		createdAt:  now,
		lastLogin:  now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	email Email,
	name, picture, oauthToken string,
	createdAt, lastLogin time.Time,
) *User {
	return &User{
		id:         id,
		email:      email,
		name:       name,
		picture:    picture,
		oauthToken: oauthToken,
		createdAt:  createdAt,
		lastLogin:  lastLogin,
	}
}

// Login refreshes the OAuth token and last-login stamp. It reports whether
// any field actually changed so an idempotent retry can be surfaced as
// "no change".
func (u *User) Login(token string, now time.Time) bool {
	if u.oauthToken == token && u.lastLogin.Equal(now) {
		return false
	}
	changed := u.oauthToken != token
	u.oauthToken = token
	u.lastLogin = now
	return changed
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) Picture() string      { return u.picture }
func (u *User) OAuthToken() string   { return u.oauthToken }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) LastLogin() time.Time { return u.lastLogin }
