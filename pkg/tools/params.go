package tools

import (
	"fmt"
	"strconv"
	"strings"
)

// ReadString reads a string parameter from input.
func ReadString(params map[string]any, key string, required bool) (string, error) {
	v, ok := params[key]
	if !ok || v == nil {
		if required {
			return "", &ValidationError{Field: key, Constraint: "required and must be non-empty"}
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &ValidationError{Field: key, Constraint: "must be a string"}
	}
	s = strings.TrimSpace(s)
	if s == "" && required {
		return "", &ValidationError{Field: key, Constraint: "required and must be non-empty"}
	}
	return s, nil
}

// ReadStringDefault reads an optional string parameter with a default.
func ReadStringDefault(params map[string]any, key, defaultVal string) string {
	s, err := ReadString(params, key, false)
	if err != nil || s == "" {
		return defaultVal
	}
	return s
}

// ReadInt reads an integer parameter. JSON numbers arrive as float64;
// strings holding digits are accepted too.
func ReadInt(params map[string]any, key string, found *bool) (int, error) {
	v, ok := params[key]
	if !ok || v == nil {
		if found != nil {
			*found = false
		}
		return 0, nil
	}
	if found != nil {
		*found = true
	}
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, &ValidationError{Field: key, Constraint: "must be an integer"}
		}
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, &ValidationError{Field: key, Constraint: "must be an integer"}
		}
		return parsed, nil
	}
	return 0, &ValidationError{Field: key, Constraint: "must be an integer"}
}

// ReadBoundedInt reads an optional integer that must fall within
// [min, max] when present. Out-of-bounds values are rejected, not
// clamped, so callers always get exactly the limit they asked for.
func ReadBoundedInt(params map[string]any, key string, defaultVal, min, max int) (int, error) {
	var found bool
	n, err := ReadInt(params, key, &found)
	if err != nil {
		return 0, err
	}
	if !found {
		return defaultVal, nil
	}
	if n < min || n > max {
		return 0, &ValidationError{Field: key, Constraint: fmt.Sprintf("must be between %d and %d", min, max)}
	}
	return n, nil
}

// ReadPositiveInt reads an optional integer that must be > 0 when present.
func ReadPositiveInt(params map[string]any, key string) (int, bool, error) {
	var found bool
	n, err := ReadInt(params, key, &found)
	if err != nil {
		return 0, false, err
	}
	if !found {
		return 0, false, nil
	}
	if n <= 0 {
		return 0, false, &ValidationError{Field: key, Constraint: "must be a positive integer"}
	}
	return n, true, nil
}

// ReadEnum reads an optional string parameter restricted to the given
// literal set. Matching is case-sensitive; an unknown literal is rejected
// rather than mapped to the default.
func ReadEnum(params map[string]any, key, defaultVal string, allowed ...string) (string, error) {
	s, err := ReadString(params, key, false)
	if err != nil {
		return "", err
	}
	if s == "" {
		return defaultVal, nil
	}
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return "", &ValidationError{Field: key, Constraint: "must be one of: " + strings.Join(allowed, ", ")}
}

// ReadBool reads an optional boolean parameter.
func ReadBool(params map[string]any, key string, defaultVal bool) bool {
	v, ok := params[key]
	if !ok {
		return defaultVal
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		lower := strings.ToLower(strings.TrimSpace(b))
		return lower == "true" || lower == "1" || lower == "yes"
	}
	return defaultVal
}

// ReadQueries reads the query parameter, accepting a single string or an
// array of strings so callers can batch queries the way the upstream API
// does.
func ReadQueries(params map[string]any, key string) ([]string, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return nil, &ValidationError{Field: key, Constraint: "required and must be non-empty"}
	}
	switch q := v.(type) {
	case string:
		trimmed := strings.TrimSpace(q)
		if trimmed == "" {
			return nil, &ValidationError{Field: key, Constraint: "required and must be non-empty"}
		}
		return []string{trimmed}, nil
	case []any:
		queries := make([]string, 0, len(q))
		for _, item := range q {
			s, ok := item.(string)
			if !ok {
				return nil, &ValidationError{Field: key, Constraint: "must be a string or array of strings"}
			}
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				queries = append(queries, trimmed)
			}
		}
		if len(queries) == 0 {
			return nil, &ValidationError{Field: key, Constraint: "required and must be non-empty"}
		}
		return queries, nil
	}
	return nil, &ValidationError{Field: key, Constraint: "must be a string or array of strings"}
}

// ReadStringArray reads an optional string array parameter.
func ReadStringArray(params map[string]any, key string) ([]string, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch arr := v.(type) {
	case string:
		return []string{arr}, nil
	case []any:
		result := make([]string, 0, len(arr))
		for _, item := range arr {
			s, ok := item.(string)
			if !ok {
				return nil, &ValidationError{Field: key, Constraint: "must be an array of strings"}
			}
			result = append(result, s)
		}
		return result, nil
	}
	return nil, &ValidationError{Field: key, Constraint: "must be an array of strings"}
}

// ReadRegion reads the optional country/region code, normalized to upper
// case two-letter form.
func ReadRegion(params map[string]any) (string, error) {
	s, err := ReadString(params, "region", false)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", nil
	}
	if len(s) != 2 {
		return "", &ValidationError{Field: "region", Constraint: "must be a two-letter country code (e.g. US, GB, DE)"}
	}
	return strings.ToUpper(s), nil
}
