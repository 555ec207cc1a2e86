package httpx

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// maxFormDepth is how many bracket levels are expanded; deeper keys keep
// the rest of the brackets as a literal key.
const maxFormDepth = 5

// ParseNestedForm expands bracketed form keys into nested values:
//
//	a=1          -> {"a": "1"}
//	a[b]=1       -> {"a": {"b": "1"}}
//	a[]=1&a[]=2  -> {"a": ["1", "2"]}
//	a[0]=x       -> {"a": ["x"]}
//
// Repeated plain keys become arrays.
func ParseNestedForm(values url.Values) (map[string]any, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	root := map[string]any{}
	for _, key := range keys {
		segments := splitFormKey(key)
		for _, v := range values[key] {
			if err := insertFormValue(root, segments, v); err != nil {
				return nil, fmt.Errorf("%w: key %q: %v", ErrMalformedBody, key, err)
			}
		}
	}

	// the root stays an object even when its keys are all indexes
	for k, v := range root {
		root[k] = compactIndexes(v)
	}
	return root, nil
}

func splitFormKey(key string) []string {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return []string{key}
	}

	segments := []string{key[:open]}
	rest := key[open:]
	for len(rest) > 0 {
		if rest[0] != '[' {
			return []string{key}
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return []string{key}
		}
		segments = append(segments, rest[1:end])
		rest = rest[end+1:]
	}

	if len(segments) > maxFormDepth+1 {
		tail := "[" + strings.Join(segments[maxFormDepth+1:], "][") + "]"
		segments = append(segments[:maxFormDepth+1:maxFormDepth+1], tail)
	}
	return segments
}

func insertFormValue(node map[string]any, segments []string, value string) error {
	name := segments[0]

	if len(segments) == 1 {
		switch existing := node[name].(type) {
		case nil:
			node[name] = value
		case string:
			node[name] = []any{existing, value}
		case []any:
			node[name] = append(existing, value)
		default:
			return fmt.Errorf("%q is both a value and an object", name)
		}
		return nil
	}

	if segments[1] == "" {
		if len(segments) > 2 {
			return fmt.Errorf("%q: nested objects inside [] are not supported", name)
		}
		switch existing := node[name].(type) {
		case nil:
			node[name] = []any{value}
		case []any:
			node[name] = append(existing, value)
		case string:
			node[name] = []any{existing, value}
		default:
			return fmt.Errorf("%q is both an array and an object", name)
		}
		return nil
	}

	child, ok := node[name].(map[string]any)
	if !ok {
		if node[name] != nil {
			return fmt.Errorf("%q is both a value and an object", name)
		}
		child = map[string]any{}
		node[name] = child
	}
	return insertFormValue(child, segments[1:], value)
}

// compactIndexes turns objects whose keys are exactly 0..n-1 into arrays.
func compactIndexes(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}

	for k, child := range m {
		m[k] = compactIndexes(child)
	}

	if len(m) == 0 {
		return m
	}
	list := make([]any, len(m))
	for k, child := range m {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 || i >= len(m) || strconv.Itoa(i) != k {
			return m
		}
		list[i] = child
	}
	return list
}
