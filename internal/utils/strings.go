package utils

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	usernameAllowed = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	fileNameAllowed = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
)

// UsernameFromEmail derives a base username from an email's local part:
// disallowed characters are stripped and the result lowercased. A local
// part with no allowed characters falls back to a default stem so the
// result is never empty.
func UsernameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	base := strings.ToLower(usernameAllowed.ReplaceAllString(local, ""))
	if base == "" {
		return "user"
	}
	return base
}

// ObjectKeyFromFileName builds a collision-resistant storage key from an
// uploaded file name: the sanitized base name plus a random suffix, keeping
// the original extension.
func ObjectKeyFromFileName(fileName string) string {
	ext := filepath.Ext(fileName)
	base := fileNameAllowed.ReplaceAllString(strings.TrimSuffix(filepath.Base(fileName), ext), "")
	return base + "-" + uuid.NewString() + ext
}

// Truncate truncates a string to the specified length and adds ellipsis if needed
func Truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return "..."
	}
	return string(runes[:maxLength-3]) + "..."
}

// MaskEmail masks the local part of an email address
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	localPart := parts[0]
	domain := parts[1]

	var maskedLocal string
	if len(localPart) <= 2 {
		maskedLocal = localPart
	} else {
		maskedLocal = localPart[:2] + strings.Repeat("*", len(localPart)-2)
	}

	return maskedLocal + "@" + domain
}
