package httpx

import (
	"context"
	"net/http"
	"net/url"
)

// CookieParser stores the request cookies as a name to value map.
func CookieParser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookies := make(map[string]string)
		for _, c := range r.Cookies() {
			if _, seen := cookies[c.Name]; seen {
				continue
			}
			value, err := url.PathUnescape(c.Value)
			if err != nil {
				value = c.Value
			}
			cookies[c.Name] = value
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), cookiesKey, cookies)))
	})
}

func Cookies(r *http.Request) map[string]string {
	if cookies, ok := r.Context().Value(cookiesKey).(map[string]string); ok {
		return cookies
	}
	return map[string]string{}
}
