package users

import "time"

type UserResponse struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AllUsersResponse struct {
	Users []UserResponse `json:"users"`
}

type NewUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}
