package news

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"
)

const maxTitleLength = 200

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrTitleTooLong        = errors.New("title cannot exceed 200 characters")
	ErrDescriptionRequired = errors.New("description is required")
	ErrNothingToUpdate     = errors.New("no fields to update")
)

var ErrorMap = map[error]int{
	ErrTitleRequired:       http.StatusBadRequest,
	ErrTitleTooLong:        http.StatusBadRequest,
	ErrDescriptionRequired: http.StatusBadRequest,
	ErrNothingToUpdate:     http.StatusBadRequest,
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func ValidateNewNews(req NewNewsRequest) error {
	if err := validateTitle(req.Title); err != nil {
		return err
	}
	if strings.TrimSpace(req.Description) == "" {
		return ErrDescriptionRequired
	}
	return nil
}
