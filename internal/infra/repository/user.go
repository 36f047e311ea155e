package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"resto-booking/internal/domain/user"
	"resto-booking/internal/infra"
	"resto-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

// Create inserts the user. ON CONFLICT DO NOTHING keeps a lost insert race
// from aborting the surrounding transaction; the caller sees DuplicateKey and
// can re-read the winning row in the same transaction.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, name, picture, oauth_token, created_at, last_login)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (email) DO NOTHING`,
		u.ID(), u.Email().Value(), u.Name(), u.Picture(), u.OAuthToken(), u.CreatedAt(), u.LastLogin(),
	)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to insert user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "user email already exists", nil)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	var (
		id         uuid.UUID
		emailValue string
		name       string
		picture    string
		oauthToken string
		createdAt  time.Time
		lastLogin  time.Time
	)

	err := r.db.QueryRow(ctx,
		`SELECT id, email, name, picture, oauth_token, created_at, last_login
		 FROM users WHERE email = $1`,
		email.Value(),
	).Scan(&id, &emailValue, &name, &picture, &oauthToken, &createdAt, &lastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find user by email", err)
	}

	parsedEmail, emailErr := user.NewEmail(emailValue)
	if emailErr != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "stored email is malformed", emailErr)
	}

	return user.Reconstruct(id, parsedEmail, name, picture, oauthToken, createdAt, lastLogin), nil
}

// SaveLogin persists the refreshed token and last-login stamp.
func (r *UserRepository) SaveLogin(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET oauth_token = $2, last_login = $3 WHERE id = $1`,
		u.ID(), u.OAuthToken(), u.LastLogin(),
	)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to update user login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "user not found", nil)
	}
	return nil
}
