package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Gouravlamba/eminent-news/internal/auth"
	"github.com/Gouravlamba/eminent-news/internal/httpx"
	"github.com/Gouravlamba/eminent-news/internal/logx"
	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"github.com/Gouravlamba/eminent-news/internal/services/ads"
	"github.com/Gouravlamba/eminent-news/internal/services/news"
	"github.com/Gouravlamba/eminent-news/internal/services/shorts"
	"github.com/Gouravlamba/eminent-news/internal/services/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Error is an error with an explicit HTTP status and client message.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

var (
	ErrRouteNotFound    = NewError(http.StatusNotFound, "Route not found")
	ErrMethodNotAllowed = NewError(http.StatusMethodNotAllowed, "Method not allowed")
	ErrTooManyRequests  = NewError(http.StatusTooManyRequests, "Too many requests, please try again later")
	ErrNotMultipart     = NewError(http.StatusBadRequest, "Request must be multipart/form-data")
)

const (
	msgInternal          = "Internal Server Error"
	msgResourceNotFound  = "Resource not found"
	msgInvalidResourceId = "Resource not found. Invalid: id"
	msgDuplicateKey      = "Duplicate key entered"
	msgBodyTooLarge      = "Request body too large"
)

// errorMaps holds the errors each package is willing to show to clients.
var errorMaps = []map[error]int{
	auth.ErrorsMap,
	httpx.ErrorMap,
	news.ErrorMap,
	ads.ErrorMap,
	shorts.ErrorMap,
	users.ErrorMap,
}

func ErrorForbiddenRole(role string) *Error {
	return NewError(http.StatusForbidden, fmt.Sprintf("Role: %s is not allowed to access this resource", role))
}

// HandlerFunc is an http handler that hands its failure to ErrorHandler.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

func handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			ErrorHandler(w, r, err)
		}
	}
}

// ErrorHandler terminates a failed request with a JSON error body. It is
// the only place where errors become responses.
func ErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	code, message := resolveError(err)

	logger := logx.FromContext(r.Context())
	if code >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Int("status", code), zap.Error(err))
	} else {
		logger.Debug("request rejected", zap.Int("status", code), zap.Error(err))
	}

	respondWithError(w, code, message)
}

func resolveError(err error) (int, string) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code, apiErr.Message
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, mongodb.ErrRecordNotFound):
		return http.StatusNotFound, msgResourceNotFound
	case errors.Is(err, mongodb.ErrInvalidId):
		return http.StatusBadRequest, msgInvalidResourceId
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, msgBodyTooLarge
	}

	for _, errMap := range errorMaps {
		if statusCode, ok := getErrorStatusCode(errMap, err); ok {
			return statusCode, formatErrorMessage(err)
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return http.StatusBadRequest, msgDuplicateKey
	}

	return http.StatusInternalServerError, msgInternal
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	ErrorHandler(w, r, ErrRouteNotFound)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	ErrorHandler(w, r, ErrMethodNotAllowed)
}
