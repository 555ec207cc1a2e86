package auth

const (
	RoleUser   = "user"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleUser, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
