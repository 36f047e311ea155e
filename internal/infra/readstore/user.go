package readstore

import (
	"context"
	"errors"
	"log/slog"

	"resto-booking/internal/infra"
	"resto-booking/internal/infra/db"
	"resto-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, email, name, picture, created_at, last_login
		 FROM users WHERE email = $1`,
		email,
	)
	return scanUserView(row)
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, email, name, picture, created_at, last_login
		 FROM users WHERE id = $1`,
		id,
	)
	return scanUserView(row)
}

func scanUserView(row pgx.Row) (*queries.UserView, error) {
	var view queries.UserView
	err := row.Scan(&view.ID, &view.Email, &view.Name, &view.Picture, &view.CreatedAt, &view.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find user", err)
	}
	return &view, nil
}
