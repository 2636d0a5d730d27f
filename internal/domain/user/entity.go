package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a lab member who can sign in. Reservations default their owner
// label to the creating user's display name.
type User struct {
	id           uuid.UUID
	email        Email
	displayName  DisplayName
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, displayName DisplayName, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		displayName:  displayName,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) Email() Email             { return u.email }
func (u *User) DisplayName() DisplayName { return u.displayName }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) Role() Role               { return u.role }
func (u *User) LastLogin() *time.Time    { return u.lastLogin }
func (u *User) IsActive() bool           { return u.isActive }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }

func ReconstructUser(
	id uuid.UUID,
	email Email,
	displayName DisplayName,
	passwordHash string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		displayName:  displayName,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}
