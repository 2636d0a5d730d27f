package usecase

import (
	"context"

	"lab-dashboard/internal/domain/user"
	"lab-dashboard/internal/pkg/errs"
	"lab-dashboard/internal/pkg/jwt"
	"lab-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrTokenValidation = errs.New("token validation failed")

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	Validate(ctx context.Context, tokenString string) (*Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	users      queries.UserReadStore
}

func NewTokenValidator(jwtService *jwt.Service, users queries.UserReadStore) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		users:      users,
	}
}

// Validate checks the signature and then the stored account, so deactivation
// and role changes apply before the token expires.
func (t *tokenValidatorImpl) Validate(ctx context.Context, tokenString string) (*Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	view, err := t.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if !view.IsActive {
		return nil, errs.Mark(errs.ErrUserInactive, ErrTokenValidation)
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return &Principal{UserID: view.ID, Role: role}, nil
}
