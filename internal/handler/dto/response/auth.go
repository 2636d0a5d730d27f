package response

import "lab-dashboard/internal/usecase/queries"

type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	IsActive    bool   `json:"isActive"`
}

func FromUserView(v *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:          v.ID.String(),
		Email:       v.Email,
		DisplayName: v.DisplayName,
		Role:        v.Role,
		IsActive:    v.IsActive,
	}
}

// LoginResponse also carries the token for non-browser clients; browsers use the cookie.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
	UserID      string `json:"userId"`
	Role        string `json:"role"`
}
