package readstore

import (
	"context"

	"lab-dashboard/internal/infra"
	"lab-dashboard/internal/infra/db"
	"lab-dashboard/internal/pkg/pgconv"
	"lab-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	findUserByIDSQL = `
SELECT id, email, display_name, role, is_active
FROM users
WHERE id = $1`

	findUserByEmailSQL = `
SELECT id, email, display_name, role, is_active, password_hash
FROM users
WHERE email = $1`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(&v.ID, &v.Email, &v.DisplayName, &v.Role, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		v    queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(&v.ID, &v.Email, &v.DisplayName, &v.Role, &v.IsActive, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}
