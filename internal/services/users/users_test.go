package users

import (
	"context"
	"strings"
	"testing"

	"github.com/Gouravlamba/eminent-news/internal/auth"
	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("reader@eminent.news"))
	require.True(t, IsValidEmail("first.last+tag@example.co"))
	require.False(t, IsValidEmail("reader@"))
	require.False(t, IsValidEmail("reader.eminent.news"))
	require.False(t, IsValidEmail(""))
}

func TestValidateNewUser(t *testing.T) {
	valid := NewUserRequest{Name: "Reader", Email: "reader@eminent.news", Password: "password1"}
	require.NoError(t, ValidateNewUser(valid))

	cases := []struct {
		name   string
		mutate func(*NewUserRequest)
		err    error
	}{
		{"blank name", func(r *NewUserRequest) { r.Name = "  " }, ErrNameRequired},
		{"long name", func(r *NewUserRequest) { r.Name = strings.Repeat("n", 31) }, ErrNameTooLong},
		{"bad email", func(r *NewUserRequest) { r.Email = "nope" }, ErrInvalidEmail},
		{"short password", func(r *NewUserRequest) { r.Password = "short" }, ErrPasswordTooShort},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := valid
			c.mutate(&req)
			require.ErrorIs(t, ValidateNewUser(req), c.err)
		})
	}
}

func TestMapDbUserToApiUserResponse(t *testing.T) {
	userDb := mongodb.UserDb{
		Id:           primitive.NewObjectID(),
		Name:         "Editor",
		Email:        "editor@eminent.news",
		PasswordHash: "hash",
		Role:         auth.RoleEditor,
	}

	login := MapDbUserToApiLoginResponse(userDb, "token")
	require.Equal(t, userDb.Id.Hex(), login.User.Id)
	require.Equal(t, auth.RoleEditor, login.User.Role)
	require.Equal(t, "token", login.Token)
}

func TestAuthenticateRequiresCredentials(t *testing.T) {
	_, err := Authenticate(nil, context.Background(), auth.LoginRequest{Email: "a@b.co"})
	require.ErrorIs(t, err, ErrCredentialsMissing)
}

func TestAdminCannotTargetSelf(t *testing.T) {
	self := primitive.NewObjectID()

	_, err := UpdateUserRole(nil, context.Background(), self, self.Hex(), UpdateRoleRequest{Role: auth.RoleUser})
	require.ErrorIs(t, err, ErrCannotChangeSelf)

	require.ErrorIs(t, DeleteUser(nil, context.Background(), self, self.Hex()), ErrCannotChangeSelf)

	_, err = UpdateUserRole(nil, context.Background(), self, primitive.NewObjectID().Hex(), UpdateRoleRequest{Role: "root"})
	require.ErrorIs(t, err, ErrInvalidRole)
}
