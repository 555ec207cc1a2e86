package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.NoError(t, CheckPasswordHash(hash, "s3cret-pass"))
	require.ErrorIs(t, CheckPasswordHash(hash, "wrong"), ErrInvalidCredentials)
}

func TestJWT(t *testing.T) {
	t.Run("Round trip returns the subject", func(t *testing.T) {
		token, err := MakeJWT("63b2f1e8e4b0f1a2b3c4d5e6", testSecret, time.Hour)
		require.NoError(t, err)

		subject, err := ValidateJWT(token, testSecret)
		require.NoError(t, err)
		require.Equal(t, "63b2f1e8e4b0f1a2b3c4d5e6", subject)
	})

	t.Run("Expired token", func(t *testing.T) {
		token, err := MakeJWT("user", testSecret, -time.Minute)
		require.NoError(t, err)

		_, err = ValidateJWT(token, testSecret)
		require.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, err := MakeJWT("user", testSecret, time.Hour)
		require.NoError(t, err)

		_, err = ValidateJWT(token, "other-secret")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Missing secret", func(t *testing.T) {
		_, err := MakeJWT("user", "", time.Hour)
		require.ErrorIs(t, err, ErrNoTokenSecret)
	})
}

func TestGetRequestToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		cookies map[string]string
		token   string
		err     error
	}{
		{name: "cookie wins", header: "Bearer from-header", cookies: map[string]string{TokenCookie: "from-cookie"}, token: "from-cookie"},
		{name: "bearer header", header: "Bearer from-header", token: "from-header"},
		{name: "nothing", err: ErrLoginRequired},
		{name: "malformed header", header: "Basic abc", err: ErrMalformedAuthHeader},
		{name: "empty bearer", header: "Bearer  ", err: ErrNoTokenInAuthHeader},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			headers := http.Header{}
			if c.header != "" {
				headers.Set("Authorization", c.header)
			}

			token, err := GetRequestToken(headers, c.cookies)
			if c.err != nil {
				require.ErrorIs(t, err, c.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.token, token)
		})
	}
}

func TestUserContext(t *testing.T) {
	require.Nil(t, GetUserFromContext(context.Background()))

	user := mongodb.UserDb{Id: primitive.NewObjectID(), Name: "editor", Role: RoleEditor}
	ctx := WithUser(context.Background(), user)

	got := GetUserFromContext(ctx)
	require.NotNil(t, got)
	require.Equal(t, user.Id, got.Id)
}
