package auth

import (
	"errors"
	"net/http"
)

var (
	ErrTokenSigningMethod    = errors.New("unexpected signing method")
	ErrInvalidToken          = errors.New("json web token is invalid, try again")
	ErrTokenExpired          = errors.New("json web token is expired, try again")
	ErrTokenWithNoSubject    = errors.New("token has no subject")
	ErrNoAuthorizationHeader = errors.New("no 'Authorization' header found")
	ErrMalformedAuthHeader   = errors.New("token must start with 'Bearer '")
	ErrNoTokenInAuthHeader   = errors.New("no token found after 'Bearer '")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrLoginRequired         = errors.New("please login to access this resource")
	ErrInactiveUser          = errors.New("user no longer exists")
	ErrNoTokenSecret         = errors.New("token secret is not configured")
)

// ErrorsMap lists the auth errors that are safe to show to the client.
// ErrNoTokenSecret is a server misconfiguration and stays a 500.
var ErrorsMap = map[error]int{
	ErrTokenSigningMethod:    http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrTokenExpired:          http.StatusUnauthorized,
	ErrTokenWithNoSubject:    http.StatusUnauthorized,
	ErrNoAuthorizationHeader: http.StatusUnauthorized,
	ErrMalformedAuthHeader:   http.StatusUnauthorized,
	ErrNoTokenInAuthHeader:   http.StatusUnauthorized,
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrLoginRequired:         http.StatusUnauthorized,
	ErrInactiveUser:          http.StatusUnauthorized,
}
