package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const UserKey contextKey = "user"

// TokenCookie is the cookie set on login and read by the auth middleware.
const TokenCookie = "token"

const issuer = "eminent-news"

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash returns ErrInvalidCredentials when the password does not
// match, so callers never reveal which half of the credentials was wrong.
func CheckPasswordHash(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidCredentials
	}
	return err
}

func MakeJWT(userId string, tokenSecret string, expiresIn time.Duration) (string, error) {
	if tokenSecret == "" {
		return "", ErrNoTokenSecret
	}

	now := time.Now()
	claim := jwt.RegisteredClaims{
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		Subject:   userId,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claim)

	return token.SignedString([]byte(tokenSecret))
}

// ValidateJWT returns the subject (user id) of a valid token.
func ValidateJWT(tokenString, tokenSecret string) (string, error) {
	if tokenSecret == "" {
		return "", ErrNoTokenSecret
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrTokenSigningMethod
			}
			return []byte(tokenSecret), nil
		},
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrTokenWithNoSubject
	}

	return claims.Subject, nil
}

func GetBearerToken(headers http.Header) (string, error) {
	bearerToken := headers.Get("Authorization")

	if bearerToken == "" {
		return "", ErrNoAuthorizationHeader
	}

	if !strings.HasPrefix(bearerToken, "Bearer ") {
		return "", ErrMalformedAuthHeader
	}

	token := strings.TrimSpace(strings.TrimPrefix(bearerToken, "Bearer "))
	if token == "" {
		return "", ErrNoTokenInAuthHeader
	}

	return token, nil
}

// GetRequestToken prefers the login cookie and falls back to the
// Authorization header.
func GetRequestToken(headers http.Header, cookies map[string]string) (string, error) {
	if token := strings.TrimSpace(cookies[TokenCookie]); token != "" {
		return token, nil
	}
	if headers.Get("Authorization") == "" {
		return "", ErrLoginRequired
	}
	return GetBearerToken(headers)
}

func GetUserFromContext(ctx context.Context) *mongodb.UserDb {
	if user, ok := ctx.Value(UserKey).(mongodb.UserDb); ok {
		return &user
	}
	return nil
}

func WithUser(ctx context.Context, user mongodb.UserDb) context.Context {
	return context.WithValue(ctx, UserKey, user)
}
