package commands

import (
	"context"
	"log/slog"
	"time"

	"lab-dashboard/internal/domain/auth"
	"lab-dashboard/internal/domain/user"
	"lab-dashboard/internal/pkg/clock"
	"lab-dashboard/internal/pkg/errs"
	"lab-dashboard/internal/pkg/jwt"
	"lab-dashboard/internal/usecase/queries"
	"lab-dashboard/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
	logger     *slog.Logger
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	clk clock.Clock,
	logger *slog.Logger,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clk,
		logger:     logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateToken(userView.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, userView.ID, a.clock.Now())
	})
	if err != nil {
		// Login succeeded; only the last_login bookkeeping failed
		a.logger.Warn("failed to update last login", "user_id", userView.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      userView.ID,
		Role:        role,
		AccessToken: accessToken,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil || userView == nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}

	if err := credentials.Verify(hashedPassword); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	return userView, nil
}
