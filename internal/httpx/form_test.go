package httpx

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNestedForm(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  map[string]any
	}{
		{
			name:  "flat",
			query: "title=Hello&category=Jobs",
			want:  map[string]any{"title": "Hello", "category": "Jobs"},
		},
		{
			name:  "nested object",
			query: "user[name]=Ana&user[address][city]=Lisbon",
			want: map[string]any{"user": map[string]any{
				"name":    "Ana",
				"address": map[string]any{"city": "Lisbon"},
			}},
		},
		{
			name:  "push array",
			query: "tags[]=a&tags[]=b",
			want:  map[string]any{"tags": []any{"a", "b"}},
		},
		{
			name:  "indexed array",
			query: "tags[1]=b&tags[0]=a",
			want:  map[string]any{"tags": []any{"a", "b"}},
		},
		{
			name:  "sparse indexes stay an object",
			query: "tags[0]=a&tags[5]=b",
			want:  map[string]any{"tags": map[string]any{"0": "a", "5": "b"}},
		},
		{
			name:  "repeated key",
			query: "id=1&id=2",
			want:  map[string]any{"id": []any{"1", "2"}},
		},
		{
			name:  "numeric top-level keys keep an object",
			query: "0=a&1=b",
			want:  map[string]any{"0": "a", "1": "b"},
		},
		{
			name:  "single numeric top-level key",
			query: "0=a",
			want:  map[string]any{"0": "a"},
		},
		{
			name:  "unbalanced brackets are literal",
			query: "a[b=1",
			want:  map[string]any{"a[b": "1"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			values, err := url.ParseQuery(c.query)
			require.NoError(t, err)

			got, err := ParseNestedForm(values)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestParseNestedFormDepthLimit(t *testing.T) {
	values := url.Values{"a[b][c][d][e][f][g]": {"deep"}}

	got, err := ParseNestedForm(values)
	require.NoError(t, err)

	node := got
	for _, k := range []string{"a", "b", "c", "d", "e", "f"} {
		next, ok := node[k].(map[string]any)
		require.True(t, ok, "missing level %s", k)
		node = next
	}
	require.Equal(t, "deep", node["[g]"])
}

func TestParseNestedFormConflict(t *testing.T) {
	values, err := url.ParseQuery("a=1&a[b]=2")
	require.NoError(t, err)

	_, err = ParseNestedForm(values)
	require.ErrorIs(t, err, ErrMalformedBody)
	require.True(t, strings.Contains(err.Error(), `"a"`))
}
