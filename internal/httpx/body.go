package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
)

// MaxBodyBytes bounds JSON and urlencoded bodies. Multipart bodies are left
// to the handlers that stream them.
const MaxBodyBytes = 1 << 20

type ctxKey int

const (
	bodyKey ctxKey = iota
	cookiesKey
)

var (
	ErrMalformedBody = errors.New("malformed request body")
	ErrBodyTooLarge  = errors.New("request body too large")
)

var ErrorMap = map[error]int{
	ErrMalformedBody: http.StatusBadRequest,
	ErrBodyTooLarge:  http.StatusRequestEntityTooLarge,
}

// ErrorFunc terminates a request that failed before reaching a handler.
type ErrorFunc func(w http.ResponseWriter, r *http.Request, err error)

// BodyParser parses JSON and urlencoded bodies into a map stored in the
// request context. The raw body is put back so handlers can still read it.
// GET and HEAD bodies are ignored.
func BodyParser(onError ErrorFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := parseBody(w, r)
			if err != nil {
				onError(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), bodyKey, body)))
		})
	}
}

func parseBody(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	body := map[string]any{}
	if r.Body == nil || r.Body == http.NoBody || r.Method == http.MethodGet || r.Method == http.MethodHead {
		return body, nil
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return body, nil
	}
	if mediaType != "application/json" && mediaType != "application/x-www-form-urlencoded" {
		return body, nil
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, ErrBodyTooLarge
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if len(bytes.TrimSpace(raw)) == 0 {
		return body, nil
	}

	if mediaType == "application/json" {
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
		}
		if body == nil {
			return nil, fmt.Errorf("%w: body must be a JSON object", ErrMalformedBody)
		}
		return body, nil
	}

	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return ParseNestedForm(values)
}

// Body returns the parsed body of the request, or an empty map.
func Body(r *http.Request) map[string]any {
	if body, ok := r.Context().Value(bodyKey).(map[string]any); ok {
		return body
	}
	return map[string]any{}
}

// Decode copies the parsed body into dst using its json tags.
func Decode(r *http.Request, dst any) error {
	raw, err := json.Marshal(Body(r))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return nil
}
