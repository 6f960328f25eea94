package utils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ParseID converts a path parameter to a store id. Zero, negative and
// non-numeric values are rejected.
func ParseID(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 1 {
		return 0, false
	}

	return result, true
}

func GenerateUUIDString() string {
	return uuid.New().String()
}

// Excerpt cuts s to at most n runes and appends an ellipsis.
func Excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + "..."
}
