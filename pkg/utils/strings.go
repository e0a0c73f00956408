package utils

import (
	"strconv"
	"strings"
)

func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}

// SplitAndTrim splits s by sep and trims whitespace around every part.
func SplitAndTrim(s, sep string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// IsPositiveNumber reports whether s parses as a number greater than zero.
func IsPositiveNumber(s string) bool {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return false
	}
	return n > 0
}

// EnvInt reads an integer from value, falling back to def when it is empty,
// malformed or not positive.
func EnvInt(value string, def int) int {
	if !IsPositiveNumber(value) {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return n
}
