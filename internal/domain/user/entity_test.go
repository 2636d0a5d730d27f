//go:build unit

package user_test

import (
	"strings"
	"testing"

	"lab-dashboard/internal/domain/user"
	"lab-dashboard/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewUserBuilder()

		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, "Test User", actual.DisplayName().String())
		assert.Equal(t, user.RoleStaff, actual.Role())
		assert.Equal(t, "hashed_password", actual.PasswordHash())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.True(t, actual.CreatedAt().Equal(b.Now))
		assert.True(t, actual.UpdatedAt().Equal(b.Now))
	})

	t.Run("メールアドレスは小文字に正規化される", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithEmail("  Alice@Example.COM ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", actual.Email().Value())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("表示名検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "100文字OK",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName(strings.Repeat("あ", 100)) },
			},
			{
				name:   "空白のみNG",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName("   ") },
				errIs:  user.ErrInvalidDisplayName,
			},
			{
				name:   "101文字NG",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName(strings.Repeat("a", 101)) },
				errIs:  user.ErrInvalidDisplayName,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "staff ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("staff") },
			},
			{
				name:   "viewer ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("viewer") },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestRole_AtLeast(t *testing.T) {
	tests := []struct {
		name string
		have user.Role
		need user.Role
		want bool
	}{
		{name: "admin は staff 以上", have: user.RoleAdmin, need: user.RoleStaff, want: true},
		{name: "staff は staff 以上", have: user.RoleStaff, need: user.RoleStaff, want: true},
		{name: "viewer は staff 未満", have: user.RoleViewer, need: user.RoleStaff, want: false},
		{name: "staff は admin 未満", have: user.RoleStaff, need: user.RoleAdmin, want: false},
		{name: "不明なロールはどこにも届かない", have: user.Role("root"), need: user.RoleViewer, want: false},
		{name: "不明な要求ロールは誰も満たさない", have: user.RoleAdmin, need: user.Role("root"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.have.AtLeast(tt.need))
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("1234567")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	pw, err := user.NewPassword("12345678")
	require.NoError(t, err)
	assert.Equal(t, "12345678", pw.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
