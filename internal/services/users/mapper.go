package users

import "github.com/Gouravlamba/eminent-news/internal/mongodb"

func MapDbUserToApiUserResponse(userDb mongodb.UserDb) UserResponse {
	return UserResponse{
		Id:        userDb.Id.Hex(),
		Name:      userDb.Name,
		Email:     userDb.Email,
		Role:      userDb.Role,
		CreatedAt: userDb.CreatedAt,
		UpdatedAt: userDb.UpdatedAt,
	}
}

func MapDbUserToApiLoginResponse(userDb mongodb.UserDb, token string) LoginResponse {
	return LoginResponse{
		Success: true,
		User:    MapDbUserToApiUserResponse(userDb),
		Token:   token,
	}
}
