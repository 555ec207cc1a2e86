package ads

import (
	"errors"
	"net/http"
	"slices"
	"strings"
)

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidCategory     = errors.New("category must be one of: " + strings.Join(Categories, ", "))
	ErrNothingToUpdate     = errors.New("no fields to update")
)

var ErrorMap = map[error]int{
	ErrTitleRequired:       http.StatusBadRequest,
	ErrDescriptionRequired: http.StatusBadRequest,
	ErrInvalidCategory:     http.StatusBadRequest,
	ErrNothingToUpdate:     http.StatusBadRequest,
}

func IsValidCategory(category string) bool {
	return slices.Contains(Categories, category)
}

func ValidateNewAd(req NewAdRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(req.Description) == "" {
		return ErrDescriptionRequired
	}
	if !IsValidCategory(req.Category) {
		return ErrInvalidCategory
	}
	return nil
}
