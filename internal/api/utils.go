package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Gouravlamba/eminent-news/internal/auth"
	"github.com/Gouravlamba/eminent-news/internal/generics"
	"github.com/Gouravlamba/eminent-news/internal/mongodb"
)

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) error {
	response, err := json.Marshal(&payload)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)

	return nil
}

func respondWithError(w http.ResponseWriter, code int, msg string) error {
	return respondWithJSON(w, code, MessageResponse{Success: false, Message: msg})
}

func respondWithMessage(w http.ResponseWriter, code int, msg string) error {
	return respondWithJSON(w, code, MessageResponse{Success: true, Message: msg})
}

// parsePageQuery reads ?page= and ?size=. Invalid values fall back to the
// defaults in generics.NormalizePage.
func parsePageQuery(r *http.Request) (int, int) {
	query := r.URL.Query()
	return generics.StringToInt(query.Get("page")), generics.StringToInt(query.Get("size"))
}

func currentUser(r *http.Request) (*mongodb.UserDb, error) {
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		return nil, auth.ErrLoginRequired
	}
	return user, nil
}

func formatErrorMessage(err error) string {
	errorMsg := err.Error()
	if len(errorMsg) > 0 {
		return strings.ToUpper(errorMsg[:1]) + errorMsg[1:]
	}
	return ""
}

// getErrorStatusCode safely checks if an error is in the ErrorMap by iterating through it
// and using errors.Is() to match errors. This prevents panics when non-hashable errors
// (like MongoDB errors) are passed as map keys.
func getErrorStatusCode(errMap map[error]int, err error) (int, bool) {
	for predefinedErr, statusCode := range errMap {
		if errors.Is(err, predefinedErr) {
			return statusCode, true
		}
	}
	return 0, false
}
