package util

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID returns a standard UUID v4.
func GenerateUUID() string {
	return uuid.New().String()
}

// GenerateShortUUID returns a UUID v4 without dashes.
func GenerateShortUUID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// GenerateMessageID returns an id for message rows, prefixed for readability.
func GenerateMessageID() string {
	return "M" + GenerateShortUUID()[:23]
}

// GenerateConversationID returns an id for conversation rows.
func GenerateConversationID() string {
	return "C" + GenerateShortUUID()[:23]
}

// TruncateRunes shortens s to at most n runes without splitting a character.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
