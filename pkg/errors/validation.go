package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxPlayerNameLength bounds player names accepted from roster files.
const MaxPlayerNameLength = 64

// ValidatePlayerName validates a player name supplied in a roster.
//
// Player names are injected verbatim into resolved documents, so the rules
// keep them on a single line:
//   - No empty names
//   - No control characters (including newlines and tabs)
//   - Maximum length of [MaxPlayerNameLength] characters
func ValidatePlayerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidRoster, "player name cannot be empty")
	}

	if utf8.RuneCountInString(name) > MaxPlayerNameLength {
		return New(ErrCodeInvalidRoster, "player name too long (max %d characters)", MaxPlayerNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidRoster, "player name %q contains control characters", name)
		}
	}

	return nil
}

// ValidatePath validates a file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "path %q names a directory", path)
	}

	return nil
}
