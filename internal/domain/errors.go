package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnsupportedFormat is returned when an output format is not known
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrCheckFailed is returned by strict checks that produced warnings
	ErrCheckFailed = errors.New("configuration check failed")

	// ErrNonInteractive is returned when a prompt is needed but prompts are disabled
	ErrNonInteractive = errors.New("interactive prompt not available in non-interactive mode")
)

// UnknownNetworkError is returned when a network name is not part of the table.
type UnknownNetworkError struct {
	Name        string
	Suggestions []string
}

func (e UnknownNetworkError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown network '%s'", e.Name)
	}
	return fmt.Sprintf("unknown network '%s', did you mean: %s?", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e UnknownNetworkError) Unwrap() error {
	return ErrNotFound
}
