package util

import (
	"errors"
	"strings"
	"unicode"
)

var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName makes name safe for a Content-Disposition header: path
// separators become underscores, quotes and control characters are dropped,
// and traversal patterns are rejected.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case r == '"' || r == ';' || unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}
