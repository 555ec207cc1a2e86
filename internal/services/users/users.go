package users

import (
	"context"
	"errors"
	"strings"

	"github.com/Gouravlamba/eminent-news/internal/auth"
	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func GetAllUsers(db *mongodb.DB, ctx context.Context) ([]UserResponse, error) {
	usersDb, err := db.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	allUsers := make([]UserResponse, 0, len(usersDb))
	for _, u := range usersDb {
		allUsers = append(allUsers, MapDbUserToApiUserResponse(u))
	}
	return allUsers, nil
}

func GetUserById(db *mongodb.DB, ctx context.Context, id string) (UserResponse, error) {
	oid, err := mongodb.ParseId(id)
	if err != nil {
		return UserResponse{}, err
	}

	userDb, err := db.GetUserById(ctx, oid)
	if err != nil {
		return UserResponse{}, err
	}
	return MapDbUserToApiUserResponse(userDb), nil
}

// AddUser registers a new account with the given role. Public registration
// always passes auth.RoleUser.
func AddUser(db *mongodb.DB, ctx context.Context, req NewUserRequest, role string) (mongodb.UserDb, error) {
	if err := ValidateNewUser(req); err != nil {
		return mongodb.UserDb{}, err
	}
	if !auth.IsValidRole(role) {
		return mongodb.UserDb{}, ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := db.UserEmailExists(ctx, email)
	if err != nil {
		return mongodb.UserDb{}, err
	}
	if exists {
		return mongodb.UserDb{}, ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return mongodb.UserDb{}, err
	}

	userDb, err := db.AddUser(ctx, mongodb.UserDb{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if mongo.IsDuplicateKeyError(err) {
		return mongodb.UserDb{}, ErrEmailAlreadyExists
	}
	return userDb, err
}

// Authenticate returns the user matching the credentials. An unknown email
// and a wrong password produce the same error.
func Authenticate(db *mongodb.DB, ctx context.Context, req auth.LoginRequest) (mongodb.UserDb, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return mongodb.UserDb{}, ErrCredentialsMissing
	}

	userDb, err := db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return mongodb.UserDb{}, auth.ErrInvalidCredentials
		}
		return mongodb.UserDb{}, err
	}

	if err := auth.CheckPasswordHash(userDb.PasswordHash, req.Password); err != nil {
		return mongodb.UserDb{}, err
	}
	return userDb, nil
}

func UpdateUserRole(db *mongodb.DB, ctx context.Context, caller primitive.ObjectID, id string, req UpdateRoleRequest) (UserResponse, error) {
	oid, err := mongodb.ParseId(id)
	if err != nil {
		return UserResponse{}, err
	}
	if !auth.IsValidRole(req.Role) {
		return UserResponse{}, ErrInvalidRole
	}
	if oid == caller {
		return UserResponse{}, ErrCannotChangeSelf
	}

	userDb, err := db.UpdateUserRole(ctx, oid, req.Role)
	if err != nil {
		return UserResponse{}, err
	}
	return MapDbUserToApiUserResponse(userDb), nil
}

func DeleteUser(db *mongodb.DB, ctx context.Context, caller primitive.ObjectID, id string) error {
	oid, err := mongodb.ParseId(id)
	if err != nil {
		return err
	}
	if oid == caller {
		return ErrCannotChangeSelf
	}
	return db.DeleteUser(ctx, oid)
}
