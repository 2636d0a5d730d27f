package request

import "lab-dashboard/internal/usecase/commands"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{Email: r.Email, Password: r.Password}
}

type RegisterUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName" binding:"required,max=100"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required,oneof=viewer staff admin"`
}

func (r RegisterUserRequest) ToInput() commands.RegisterUserInput {
	return commands.RegisterUserInput{
		Email:       r.Email,
		DisplayName: r.DisplayName,
		Password:    r.Password,
		Role:        r.Role,
	}
}
