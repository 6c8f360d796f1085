package utils

import (
	"strings"

	"github.com/spf13/cast"
)

// ToInt converts database and CSV values to int. Unconvertible values yield 0.
func ToInt(val any) int {
	if b, ok := val.([]byte); ok {
		val = string(b)
	}
	if s, ok := val.(string); ok {
		val = strings.TrimSpace(s)
	}
	return cast.ToInt(val)
}

// ToString converts various types to string. NULL becomes "".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case *string:
		if v == nil {
			return ""
		}
		return *v
	default:
		return cast.ToString(v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (non-zero is true), "Y"/"N" flags and the
// strings accepted by strconv.ParseBool.
func ToBool(val any) bool {
	s := strings.TrimSpace(ToString(val))
	switch strings.ToUpper(s) {
	case "Y", "YES":
		return true
	case "N", "NO", "":
		return false
	}
	if b, ok := val.(bool); ok {
		return b
	}
	return cast.ToBool(s)
}

// RowString reads key from a raw row map and trims it.
func RowString(row map[string]any, key string) string {
	return strings.TrimSpace(ToString(row[key]))
}
