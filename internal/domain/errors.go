package domain

import (
	"errors"
	"strings"
)

// Sentinel errors for catalog operations. Callers match them with errors.Is;
// implementations wrap them with context using fmt.Errorf("...: %w", err).
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrDuplicateName       = errors.New("duplicate name")
	ErrNotFound            = errors.New("not found")
	ErrIO                  = errors.New("persistence failure")
	ErrSlotNotFound        = errors.New("storage slot not found")
	ErrResourceUnavailable = errors.New("resource unavailable")
	ErrUnauthorized        = errors.New("unauthorized")
)

// SameName reports whether two names are the same identity key: surrounding
// whitespace is ignored and letter case is folded. Every name, tag category and
// tag value comparison in the catalog goes through this function.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
