package users

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"
)

const MinPasswordLength = 8

var (
	ErrNameRequired       = errors.New("please enter your name")
	ErrNameTooLong        = errors.New("name cannot exceed 30 characters")
	ErrInvalidEmail       = errors.New("please enter a valid email")
	ErrPasswordTooShort   = errors.New("password should be at least 8 characters")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidRole        = errors.New("role must be one of user, editor or admin")
	ErrCredentialsMissing = errors.New("please enter email and password")
	ErrCannotChangeSelf   = errors.New("admins cannot change or delete their own account here")
)

var ErrorMap = map[error]int{
	ErrNameRequired:       http.StatusBadRequest,
	ErrNameTooLong:        http.StatusBadRequest,
	ErrInvalidEmail:       http.StatusBadRequest,
	ErrPasswordTooShort:   http.StatusBadRequest,
	ErrEmailAlreadyExists: http.StatusBadRequest,
	ErrInvalidRole:        http.StatusBadRequest,
	ErrCredentialsMissing: http.StatusBadRequest,
	ErrCannotChangeSelf:   http.StatusBadRequest,
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidateNewUser(req NewUserRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ErrNameRequired
	}
	if utf8.RuneCountInString(name) > 30 {
		return ErrNameTooLong
	}
	if !IsValidEmail(strings.TrimSpace(req.Email)) {
		return ErrInvalidEmail
	}
	if len(req.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
