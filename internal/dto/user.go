package dto

import (
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
)

// SignupRequest creates a new user. Role defaults to "individual".
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"omitempty,oneof=individual business admin"`

	// Individual profile fields.
	Age        int    `json:"age"`
	Profession string `json:"profession"`

	// Business profile fields.
	BusinessName  string `json:"businessName"`
	BusinessRegNo string `json:"businessRegNo"`
}

// LoginRequest authenticates a user by email and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token alongside the user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserRequest is a partial profile update; nil fields are left untouched.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// UserResponse is the wire shape for a user; the password hash never leaves
// the backend.
type UserResponse struct {
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Role          string `json:"role"`
	Age           int    `json:"age,omitempty"`
	Profession    string `json:"profession,omitempty"`
	BusinessName  string `json:"businessName,omitempty"`
	BusinessRegNo string `json:"businessRegNo,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// ToUserResponse converts a domain user to its wire shape.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:        user.UserID,
		Name:          user.Name,
		Email:         user.Email,
		Phone:         user.Phone,
		Role:          string(user.Role),
		Age:           user.Age,
		Profession:    user.Profession,
		BusinessName:  user.BusinessName,
		BusinessRegNo: user.BusinessRegNo,
		CreatedAt:     user.CreatedAt,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain users to the list wire shape.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}
