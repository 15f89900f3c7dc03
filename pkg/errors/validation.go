package errors

import "unicode"

// ValidateFormat checks an output format name against the supported
// set. The set is passed in so the single source of truth stays with
// the pipeline package.
func ValidateFormat(format string, valid map[string]bool) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	}
	if !valid[format] {
		return New(ErrCodeInvalidFormat, "unknown output format %q", format)
	}
	return nil
}

// ValidateCanvas checks canvas dimensions for sanity. Dimensions must
// be positive and small enough that a raster context stays allocatable.
func ValidateCanvas(width, height float64) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidCanvas, "canvas dimensions must be positive, got %gx%g", width, height)
	}
	const maxSide = 16384
	if width > maxSide || height > maxSide {
		return New(ErrCodeInvalidCanvas, "canvas side exceeds %d pixels", maxSide)
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
// Relative paths are allowed because the CLI resolves them before
// writing; control characters and null bytes are not.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	if len(path) > 500 {
		return New(ErrCodeInvalidPath, "output path too long (max 500 characters)")
	}
	for _, r := range path {
		if r == 0 || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains control characters")
		}
	}
	return nil
}
