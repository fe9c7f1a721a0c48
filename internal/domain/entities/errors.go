package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a name resolves to no philosopher.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguousMatch is returned by strict resolution when a name matches
	// more than one philosopher.
	ErrAmbiguousMatch = errors.New("ambiguous match")
	// ErrIncompleteContext is returned when a simulated context lacks a field.
	ErrIncompleteContext = errors.New("incomplete simulated context")
)

// AmbiguousMatchError lists every candidate for an ambiguous name.
type AmbiguousMatchError struct {
	Query      string
	Candidates []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("%q matches %d philosophers: %s", e.Query, len(e.Candidates), strings.Join(e.Candidates, ", "))
}

// Unwrap lets errors.Is match ErrAmbiguousMatch.
func (e *AmbiguousMatchError) Unwrap() error {
	return ErrAmbiguousMatch
}
