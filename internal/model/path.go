package model

import (
	"fmt"
	"regexp"
	"strings"
)

// pathSegmentRegex matches a single segment of a parameter path.
var pathSegmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidatePath checks a parameter path against the registry path grammar:
// non-empty, ASCII, dot-separated segments of letters, digits, underscores
// and hyphens, with no empty segments and no leading or trailing dots.
// A malformed path fails with ErrSchema so it can never be silently
// namespaced into the registry.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("parameter path is empty: %w", ErrSchema)
	}
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return fmt.Errorf("parameter path %q contains an empty segment: %w", path, ErrSchema)
		}
		if !pathSegmentRegex.MatchString(segment) {
			return fmt.Errorf("parameter path %q has an invalid segment %q: %w", path, segment, ErrSchema)
		}
	}
	return nil
}
