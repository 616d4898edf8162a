package errors

import (
	"strings"
	"unicode"
)

// ValidateComponentName validates a requested component name before
// sanitization. It rejects names that could be used for path traversal
// or injection when the name becomes a file name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
//
// Identifier sanitization (stripping to letters and digits) happens
// later in the assembler; this only guards the raw input.
func ValidateComponentName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "component name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidName, "component name too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "component name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "component name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidatePath validates an output path within the target project for
// safety. It prevents path traversal attacks and ensures reasonable
// path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// ValidateFontFamily validates a font family name before it is
// interpolated into a provider request URL.
func ValidateFontFamily(family string) error {
	if family == "" {
		return New(ErrCodeInvalidInput, "font family cannot be empty")
	}

	if len(family) > 128 {
		return New(ErrCodeInvalidInput, "font family too long (max 128 characters)")
	}

	for _, r := range family {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "font family contains invalid control characters")
		}
	}

	if strings.ContainsAny(family, "/\\?&=#%") {
		return New(ErrCodeInvalidInput, "font family contains reserved URL characters")
	}

	return nil
}

// ValidateTarget validates an output target name.
// Only the react target is currently supported.
func ValidateTarget(target string) error {
	switch target {
	case "react":
		return nil
	case "":
		return New(ErrCodeInvalidTarget, "target cannot be empty")
	default:
		return New(ErrCodeInvalidTarget, "unsupported target: %q (supported: react)", target)
	}
}
