package response

import (
	"time"

	"event-booking/internal/usecase/commands"
	"event-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	resp := copyInto[UserResponse](v)
	return &resp
}

type AuthResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      *UserResponse `json:"user"`
}

func FromAuthResult(r *commands.AuthResult) *AuthResponse {
	user := copyInto[UserResponse](r.User)
	return &AuthResponse{
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
		User:      &user,
	}
}
