//go:build unit

package readstore

import (
	"context"
	"testing"

	"lab-dashboard/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Row)
}

// fakeRow copies values positionally into Scan destinations.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = r.values[i].(uuid.UUID)
		case *string:
			*p = r.values[i].(string)
		case *bool:
			*p = r.values[i].(bool)
		}
	}
	return nil
}

func TestUserReadStore_FindByEmail(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		row      fakeRow
		wantHash string
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:     "success - active user",
			row:      fakeRow{values: []any{id, "staff@example.com", "Staff", "staff", true, "hash"}},
			wantHash: "hash",
		},
		{
			name:     "success - inactive user is returned for the caller to reject",
			row:      fakeRow{values: []any{id, "staff@example.com", "Staff", "staff", false, "hash"}},
			wantHash: "hash",
		},
		{
			name:     "user not found",
			row:      fakeRow{err: pgx.ErrNoRows},
			wantKind: infra.KindNotFound,
		},
		{
			name:     "database error",
			row:      fakeRow{err: assert.AnError},
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbtx := new(MockDBTX)
			dbtx.On("QueryRow", mock.Anything, findUserByEmailSQL, []any{"staff@example.com"}).Return(tt.row)

			store := NewUserReadStore(dbtx)
			view, hash, err := store.FindByEmail(context.Background(), "staff@example.com")

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, view)
				assert.Empty(t, hash)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, view.ID)
				assert.Equal(t, "Staff", view.DisplayName)
				assert.Equal(t, tt.row.values[4], view.IsActive)
				assert.Equal(t, tt.wantHash, hash)
			}
			dbtx.AssertExpectations(t)
		})
	}
}

func TestUserReadStore_FindByID(t *testing.T) {
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("QueryRow", mock.Anything, findUserByIDSQL, []any{id}).
			Return(fakeRow{values: []any{id, "admin@example.com", "Admin", "admin", true}})

		view, err := NewUserReadStore(dbtx).FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "admin", view.Role)
		assert.Equal(t, "admin@example.com", view.Email)
	})

	t.Run("not found", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("QueryRow", mock.Anything, findUserByIDSQL, []any{id}).Return(fakeRow{err: pgx.ErrNoRows})

		view, err := NewUserReadStore(dbtx).FindByID(context.Background(), id)
		require.Error(t, err)
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
