package httpx

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	body    map[string]any
	raw     string
	err     error
	reached bool
}

func newParserHandler(c *captured) http.Handler {
	onError := func(w http.ResponseWriter, r *http.Request, err error) {
		c.err = err
		w.WriteHeader(http.StatusBadRequest)
	}
	return BodyParser(onError)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.reached = true
		c.body = Body(r)
		raw, _ := io.ReadAll(r.Body)
		c.raw = string(raw)
	}))
}

func TestBodyParserJSON(t *testing.T) {
	var c captured
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Hi","nested":{"n":1}}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	newParserHandler(&c).ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, c.reached)
	assert.Equal(t, "Hi", c.body["title"])
	assert.Equal(t, map[string]any{"n": float64(1)}, c.body["nested"])
	assert.Equal(t, `{"title":"Hi","nested":{"n":1}}`, c.raw)
}

func TestBodyParserUrlencoded(t *testing.T) {
	var c captured
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("title=Hi&tags[]=a&tags[]=b"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	newParserHandler(&c).ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, c.reached)
	assert.Equal(t, "Hi", c.body["title"])
	assert.Equal(t, []any{"a", "b"}, c.body["tags"])
}

func TestBodyParserMalformedJSON(t *testing.T) {
	var c captured
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	newParserHandler(&c).ServeHTTP(rec, req)

	require.False(t, c.reached)
	require.ErrorIs(t, c.err, ErrMalformedBody)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBodyParserTooLarge(t *testing.T) {
	var c captured
	payload := `{"title":"` + strings.Repeat("x", MaxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	newParserHandler(&c).ServeHTTP(httptest.NewRecorder(), req)

	require.False(t, c.reached)
	require.ErrorIs(t, c.err, ErrBodyTooLarge)
}

func TestBodyParserIgnoresOtherContent(t *testing.T) {
	for _, contentType := range []string{"", "text/plain", "multipart/form-data; boundary=x"} {
		var c captured
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not parsed"))
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		newParserHandler(&c).ServeHTTP(httptest.NewRecorder(), req)

		require.True(t, c.reached, contentType)
		require.Empty(t, c.body, contentType)
		require.Equal(t, "not parsed", c.raw, contentType)
	}
}

func TestDecode(t *testing.T) {
	var c captured
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("email=a%40b.co&password=secret"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var dst struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	handler := BodyParser(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.err = Decode(r, &dst)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NoError(t, c.err)
	require.Equal(t, "a@b.co", dst.Email)
	require.Equal(t, "secret", dst.Password)
}

func TestDecodeTypeMismatch(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	var dst struct {
		Size int `json:"size"`
	}
	require.NoError(t, Decode(req, &dst))

	var err error
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"size":"big"}`))
	req.Header.Set("Content-Type", "application/json")
	BodyParser(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err = Decode(r, &dst)
	})).ServeHTTP(httptest.NewRecorder(), req)
	require.ErrorIs(t, err, ErrMalformedBody)
}

func TestBodyParserSkipsGet(t *testing.T) {
	var c captured
	req := httptest.NewRequest(http.MethodGet, "/", strings.NewReader(`{"broken"`))
	req.Header.Set("Content-Type", "application/json")

	newParserHandler(&c).ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, c.reached)
	require.Empty(t, c.body)
}

func TestBodyParserUrlencodedNumericKeys(t *testing.T) {
	var c captured
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0=a&1=b"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	newParserHandler(&c).ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, c.reached)
	require.NoError(t, c.err)
	assert.Equal(t, map[string]any{"0": "a", "1": "b"}, c.body)
}

func TestBodyParserRejectsNonObjectJSON(t *testing.T) {
	for _, raw := range []string{`null`, `[1,2]`, `"text"`} {
		t.Run(raw, func(t *testing.T) {
			var c captured
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(raw))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			newParserHandler(&c).ServeHTTP(rec, req)

			require.False(t, c.reached)
			require.ErrorIs(t, c.err, ErrMalformedBody)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
