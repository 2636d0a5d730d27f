package repository

import (
	"context"
	"time"

	"lab-dashboard/internal/domain/user"
	"lab-dashboard/internal/infra"
	"lab-dashboard/internal/infra/db"
	"lab-dashboard/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	findUserForWriteSQL = `
SELECT id, email, display_name, password_hash, role, last_login_at, is_active, created_at, updated_at
FROM users
WHERE id = $1`

	insertUserSQL = `
INSERT INTO users (id, email, display_name, password_hash, role, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	updateUserLastLoginSQL = `UPDATE users SET last_login_at = $2, updated_at = $2 WHERE id = $1`
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var (
		rawEmail, rawName, hash, rawRole string
		lastLogin                        pgtype.Timestamptz
		isActive                         bool
		createdAt, updatedAt             time.Time
	)
	err := r.db.QueryRow(ctx, findUserForWriteSQL, id).
		Scan(&id, &rawEmail, &rawName, &hash, &rawRole, &lastLogin, &isActive, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}

	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user email is invalid", err)
	}
	name, err := user.NewDisplayName(rawName)
	if err != nil {
		return nil, infra.WrapRepoErr("stored display name is invalid", err)
	}
	role, err := user.NewRole(rawRole)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user role is invalid", err)
	}

	return user.ReconstructUser(id, email, name, hash, role,
		pgconv.TimePtrFromPgtype(lastLogin), isActive, createdAt, updatedAt), nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, insertUserSQL,
		u.ID(), u.Email().Value(), u.DisplayName().String(), u.PasswordHash(),
		u.Role().String(), u.IsActive(), u.CreatedAt(), u.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx, updateUserLastLoginSQL, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
