package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gouravlamba/eminent-news/internal/auth"
	"github.com/Gouravlamba/eminent-news/internal/httpx"
	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"github.com/Gouravlamba/eminent-news/internal/services/news"
	"github.com/Gouravlamba/eminent-news/internal/services/shorts"
	"github.com/Gouravlamba/eminent-news/internal/services/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestResolveError(t *testing.T) {
	_, invalidIdErr := mongodb.ParseId("not-an-id")
	require.Error(t, invalidIdErr)

	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"explicit api error", NewError(http.StatusTeapot, "short and stout"), http.StatusTeapot, "short and stout"},
		{"wrapped api error", fmt.Errorf("ctx: %w", ErrTooManyRequests), http.StatusTooManyRequests, ErrTooManyRequests.Message},
		{"record not found", fmt.Errorf("lookup: %w", mongodb.ErrRecordNotFound), http.StatusNotFound, "Resource not found"},
		{"invalid id", invalidIdErr, http.StatusBadRequest, "Resource not found. Invalid: id"},
		{"duplicate key", mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000"}}}, http.StatusBadRequest, "Duplicate key entered"},
		{"auth error", auth.ErrTokenExpired, http.StatusUnauthorized, "Json web token is expired, try again"},
		{"validation error", news.ErrTitleRequired, http.StatusBadRequest, "Title is required"},
		{"users error", users.ErrEmailAlreadyExists, http.StatusBadRequest, "Email already registered"},
		{"storage unavailable", shorts.ErrStorageUnavailable, http.StatusServiceUnavailable, "Video storage is not configured"},
		{"body too large", httpx.ErrBodyTooLarge, http.StatusRequestEntityTooLarge, "Request body too large"},
		{"max bytes reader", &http.MaxBytesError{Limit: 1}, http.StatusRequestEntityTooLarge, "Request body too large"},
		{"token secret missing", auth.ErrNoTokenSecret, http.StatusInternalServerError, "Internal Server Error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, message := resolveError(c.err)
			assert.Equal(t, c.code, code)
			assert.Equal(t, c.message, message)
		})
	}
}

func TestErrorHandlerWritesEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nothing", nil)

	NotFound(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, MessageResponse{Success: false, Message: "Route not found"}, body)
}

func TestHandleFunnelsErrors(t *testing.T) {
	h := handle(func(w http.ResponseWriter, r *http.Request) error {
		return mongodb.ErrRecordNotFound
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"success":false,"message":"Resource not found"}`, rec.Body.String())
}

func TestRootHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	RootHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true,"message":"Server Up and Running !!"}`, rec.Body.String())
}
