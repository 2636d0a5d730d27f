package commands

import (
	"context"
	"log/slog"

	"lab-dashboard/internal/domain/user"
	"lab-dashboard/internal/infra"
	"lab-dashboard/internal/pkg/clock"
	"lab-dashboard/internal/pkg/errs"
	"lab-dashboard/internal/pkg/password"
	"lab-dashboard/internal/usecase/queries"
	"lab-dashboard/internal/usecase/shared"
)

type UserCommands interface {
	Register(ctx context.Context, in RegisterUserInput) (*queries.AuthorizedUserView, error)
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *userCommandsImpl) Register(ctx context.Context, in RegisterUserInput) (*queries.AuthorizedUserView, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	name, err := user.NewDisplayName(in.DisplayName)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	u := user.NewUser(email, name, hash, role, uc.clock.Now())
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailTaken)
		}
		return nil, err
	}

	uc.logger.Info("user registered", "user_id", u.ID(), "role", role.String())

	return &queries.AuthorizedUserView{
		ID:          u.ID(),
		Email:       email.Value(),
		DisplayName: name.String(),
		Role:        role.String(),
		IsActive:    u.IsActive(),
	}, nil
}
