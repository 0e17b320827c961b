package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxLanguageName bounds language names accepted from stats files.
const maxLanguageName = 128

// ValidateLanguageName rejects names that cannot be shown on a card:
// empty names, control characters and overly long names.
func ValidateLanguageName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidLanguage, "language name cannot be empty")
	}

	if len(name) > maxLanguageName {
		return New(ErrCodeInvalidLanguage, "language name too long (max %d characters)", maxLanguageName)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLanguage, "language name contains invalid control characters")
		}
	}

	return nil
}

// ValidateSize rejects negative, NaN and infinite byte sizes.
func ValidateSize(name string, size float64) error {
	if math.IsNaN(size) || math.IsInf(size, 0) {
		return New(ErrCodeInvalidInput, "%s: size must be a finite number", name)
	}
	if size < 0 {
		return New(ErrCodeInvalidInput, "%s: size cannot be negative (%g)", name, size)
	}
	return nil
}

// maxPath bounds output paths given on the command line.
const maxPath = 500

// ValidatePath checks an output path before a card is written to it.
func ValidatePath(path string) error {
	switch {
	case path == "":
		return New(ErrCodeInvalidPath, "output path is empty")
	case len(path) > maxPath:
		return New(ErrCodeInvalidPath, "output path longer than %d bytes", maxPath)
	case strings.IndexFunc(path, unicode.IsControl) >= 0:
		return New(ErrCodeInvalidPath, "output path contains control characters")
	}
	return nil
}
