//go:build unit || e2e

package builder

import (
	"time"

	"lab-dashboard/internal/domain/user"
	reqdto "lab-dashboard/internal/handler/dto/request"
	"lab-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	DisplayName  string
	Password     string
	PasswordHash string
	Role         string
	IsActive     bool
	Now          time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		DisplayName:  "Test User",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Role:         "staff",
		IsActive:     true,
		Now:          time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	name, err := user.NewDisplayName(u.DisplayName)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(email, name, u.PasswordHash, role, u.Now), nil
}

// BuildStored mirrors a row loaded back from the database, keeping ID and IsActive.
func (u *UserBuilder) BuildStored() (*user.User, error) {
	fresh, err := u.BuildDomain()
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(u.ID, fresh.Email(), fresh.DisplayName(), u.PasswordHash, fresh.Role(),
		nil, u.IsActive, u.Now, u.Now), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		IsActive:    u.IsActive,
	}
}

func (u *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterUserRequest {
	return reqdto.RegisterUserRequest{
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Password:    u.Password,
		Role:        u.Role,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithDisplayName(name string) *UserBuilder {
	u.DisplayName = name
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}

func (u *UserBuilder) AsViewer() *UserBuilder {
	u.Role = "viewer"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
