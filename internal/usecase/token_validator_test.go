//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"lab-dashboard/internal/domain/user"
	"lab-dashboard/internal/pkg/clock"
	"lab-dashboard/internal/pkg/errs"
	"lab-dashboard/internal/pkg/jwt"
	"lab-dashboard/internal/usecase"
	"lab-dashboard/tests/common/builder"
	queriesmock "lab-dashboard/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTokenValidator_Validate(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC))
	jwtService := jwt.NewService("test-secret", time.Hour, clk)

	issue := func(t *testing.T, b *builder.UserBuilder, role user.Role) string {
		t.Helper()
		token, err := jwtService.GenerateToken(b.ID, role)
		require.NoError(t, err)
		return token
	}

	t.Run("success: role comes from the stored account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		b := builder.NewUserBuilder().AsAdmin()
		store.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildReadModel(), nil)

		// issued while the account was still staff
		token := issue(t, b, user.RoleStaff)

		p, err := usecase.NewTokenValidator(jwtService, store).Validate(t.Context(), token)
		require.NoError(t, err)
		assert.Equal(t, b.ID, p.UserID)
		assert.Equal(t, user.RoleAdmin, p.Role)
	})

	t.Run("error: deactivated account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		b := builder.NewUserBuilder().AsInactive()
		store.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildReadModel(), nil)

		_, err := usecase.NewTokenValidator(jwtService, store).Validate(t.Context(), issue(t, b, user.RoleStaff))
		assert.True(t, errs.Is(err, usecase.ErrTokenValidation))
		assert.True(t, errs.Is(err, errs.ErrUserInactive))
	})

	t.Run("error: deleted account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		b := builder.NewUserBuilder()
		store.EXPECT().FindByID(gomock.Any(), b.ID).Return(nil, errs.New("not found"))

		_, err := usecase.NewTokenValidator(jwtService, store).Validate(t.Context(), issue(t, b, user.RoleStaff))
		assert.True(t, errs.Is(err, usecase.ErrTokenValidation))
	})

	t.Run("error: bad signature skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		other := jwt.NewService("another-secret", time.Hour, clk)
		token, err := other.GenerateToken(builder.NewUserBuilder().ID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = usecase.NewTokenValidator(jwtService, store).Validate(t.Context(), token)
		assert.True(t, errs.Is(err, usecase.ErrTokenValidation))
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})
}
