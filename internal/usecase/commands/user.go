package commands

import (
	"context"

	"resto-booking/internal/domain/user"
	"resto-booking/internal/infra"
	"resto-booking/internal/pkg/clock"
	"resto-booking/internal/pkg/errs"
	"resto-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SyncUserResult struct {
	ID     uuid.UUID
	Email  string
	Status string
}

type UserCommands interface {
	Sync(ctx context.Context, profile user.Profile) (*SyncUserResult, error)
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clock clock.Clock) UserCommands {
	return &userCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

// Sync upserts the directory record keyed by the profile email. First login
// inserts, a login with a fresh token updates, and a replayed login with the
// same token reports no change.
func (u *userCommandsImpl) Sync(ctx context.Context, profile user.Profile) (*SyncUserResult, error) {
	email, err := user.NewEmail(profile.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrEmailRequired)
	}

	var result *SyncUserResult
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, findErr := tx.Users().FindByEmail(ctx, email)
		if findErr != nil {
			if !infra.IsKind(findErr, infra.KindNotFound) {
				return errs.Mark(findErr, errs.ErrDatabaseOperationFailed)
			}
			inserted, insertErr := u.insert(ctx, tx, profile)
			if insertErr == nil {
				result = inserted
				return nil
			}
			// Lost the insert race: another login for the same email
			// committed first, so fall through to the update path.
			if !infra.IsKind(insertErr, infra.KindDuplicateKey) {
				return insertErr
			}
			existing, findErr = tx.Users().FindByEmail(ctx, email)
			if findErr != nil {
				return errs.Mark(findErr, errs.ErrDatabaseOperationFailed)
			}
		}

		changed := existing.Login(profile.Token, u.clock.Now())
		if saveErr := tx.Users().SaveLogin(ctx, existing); saveErr != nil {
			return errs.Mark(saveErr, errs.ErrDatabaseOperationFailed)
		}

		status := SyncStatusNoChange
		if changed {
			status = SyncStatusUpdated
		}
		result = &SyncUserResult{
			ID:     existing.ID(),
			Email:  existing.Email().Value(),
			Status: status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *userCommandsImpl) insert(ctx context.Context, tx shared.Tx, profile user.Profile) (*SyncUserResult, error) {
	entity, err := user.NewUser(profile, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := tx.Users().Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &SyncUserResult{
		ID:     entity.ID(),
		Email:  entity.Email().Value(),
		Status: SyncStatusInserted,
	}, nil
}
