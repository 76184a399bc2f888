package network

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// MaxIdentifierLength is the longest identifier accepted, in characters.
// Discovered network names above this length come from a malformed source
// and are rejected rather than truncated.
const MaxIdentifierLength = 31

var (
	// ErrEmptyIdentifier is returned when an identifier has no characters.
	ErrEmptyIdentifier = errors.New("identifier is empty")
	// ErrIdentifierTooLong is returned when an identifier exceeds MaxIdentifierLength.
	ErrIdentifierTooLong = fmt.Errorf("identifier exceeds %d characters", MaxIdentifierLength)
	// ErrIdentifierNotPrintable is returned when an identifier contains control or
	// otherwise non-printable characters.
	ErrIdentifierNotPrintable = errors.New("identifier contains non-printable characters")
)

// Identifier is a discovered network name token. It is a value type: copies
// cross task boundaries, so no ownership is shared through the queue.
type Identifier string

// NewIdentifier validates raw input and returns it as an Identifier.
func NewIdentifier(raw string) (Identifier, error) {
	if raw == "" {
		return "", ErrEmptyIdentifier
	}

	if utf8.RuneCountInString(raw) > MaxIdentifierLength {
		return "", ErrIdentifierTooLong
	}

	for _, r := range raw {
		if !unicode.IsPrint(r) {
			return "", ErrIdentifierNotPrintable
		}
	}

	return Identifier(raw), nil
}

// MustIdentifier is a NewIdentifier wrapper for statically known values.
// It panics on invalid input and exists for defaults and tests.
func MustIdentifier(raw string) Identifier {
	id, err := NewIdentifier(raw)
	if err != nil {
		panic(fmt.Sprintf("invalid identifier %q: %v", raw, err))
	}

	return id
}

// String returns the identifier as plain text.
func (id Identifier) String() string {
	return string(id)
}
