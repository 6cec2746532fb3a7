package domain

import (
	"strings"
	"unicode"
)

// gitProhibited are characters git check-ref-format rejects anywhere in a ref name
const gitProhibited = " ~^:?*[\\"

// ValidateBranchName checks name against git's ref-format rules and returns a
// *ValidationError describing the first violation. A leading '-' is rejected too,
// so a branch can never be read as a command option.
func ValidateBranchName(name string) error {
	invalid := func(msg string) error {
		return NewValidationError("branch", "branch name "+msg)
	}

	switch {
	case name == "":
		return invalid("cannot be empty")
	case name == "@":
		return invalid("cannot be '@'")
	case strings.HasPrefix(name, "-"):
		return invalid("cannot start with '-'")
	case strings.HasPrefix(name, "."), strings.Contains(name, "/."):
		return invalid("cannot have a component starting with '.'")
	case strings.HasPrefix(name, "/"):
		return invalid("cannot start with '/'")
	case strings.HasSuffix(name, ".lock"):
		return invalid("cannot end with '.lock'")
	case strings.HasSuffix(name, "."):
		return invalid("cannot end with '.'")
	case strings.HasSuffix(name, "/"):
		return invalid("cannot end with '/'")
	case strings.Contains(name, ".."):
		return invalid("cannot contain '..'")
	case strings.Contains(name, "//"):
		return invalid("cannot contain '//'")
	case strings.Contains(name, "@{"):
		return invalid("cannot contain '@{'")
	case strings.ContainsAny(name, gitProhibited):
		return invalid("cannot contain spaces or any of ~ ^ : ? * [ \\")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return invalid("cannot contain control characters")
		}
	}
	return nil
}
