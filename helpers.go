package clubsite

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parsePositiveInt parses s as a positive integer.
func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("not positive: %d", n)
	}
	return n, nil
}

// safeFileName replaces every character outside [a-zA-Z0-9.-] with an
// underscore so uploaded filenames are safe to use as storage keys.
func safeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
}

// longDate formats a time as "Month D, YYYY", the display format used for
// event dates.
func longDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FilterEmpty removes empty and whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// mergeJSON shallow-merges a partial JSON object over base: every key present
// in partial replaces the corresponding top-level field of base, keys in
// preserve keep their existing value, and everything else is untouched.
func mergeJSON[T any](base T, partial map[string]json.RawMessage, preserve ...string) (T, error) {
	var zero T
	raw, err := json.Marshal(base)
	if err != nil {
		return zero, fmt.Errorf("marshal base: %w", err)
	}
	merged := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &merged); err != nil {
		return zero, fmt.Errorf("unmarshal base: %w", err)
	}
	kept := make(map[string]json.RawMessage, len(preserve))
	for _, k := range preserve {
		if v, ok := merged[k]; ok {
			kept[k] = v
		}
	}
	for k, v := range partial {
		merged[k] = v
	}
	for k, v := range kept {
		merged[k] = v
	}
	out, err := json.Marshal(merged)
	if err != nil {
		return zero, fmt.Errorf("marshal merged: %w", err)
	}
	var result T
	if err := json.Unmarshal(out, &result); err != nil {
		return zero, fmt.Errorf("unmarshal merged: %w", err)
	}
	return result, nil
}
