package commands

import (
	"context"

	"resto-booking/internal/pkg/errs"
	"resto-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID     uuid.UUID
	Email      string
	Token      string
	SyncStatus string
}

type AuthCommands interface {
	ConsentURL(state string) string
	Callback(ctx context.Context, code string) (*LoginResult, error)
}

type authCommandsImpl struct {
	resolver     IdentityResolver
	userCommands UserCommands
	jwtService   *jwt.Service
}

func NewAuthCommands(resolver IdentityResolver, userCommands UserCommands, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		resolver:     resolver,
		userCommands: userCommands,
		jwtService:   jwtService,
	}
}

func (a *authCommandsImpl) ConsentURL(state string) string {
	return a.resolver.ConsentURL(state)
}

// Callback exchanges the authorization code, syncs the directory record and
// issues the session token the frontend holds on to.
func (a *authCommandsImpl) Callback(ctx context.Context, code string) (*LoginResult, error) {
	profile, err := a.resolver.Exchange(ctx, code)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	syncResult, err := a.userCommands.Sync(ctx, *profile)
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.Generate(syncResult.ID, syncResult.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:     syncResult.ID,
		Email:      syncResult.Email,
		Token:      token,
		SyncStatus: syncResult.Status,
	}, nil
}
