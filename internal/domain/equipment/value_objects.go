package equipment

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength     = 255
	MaxTypeLength     = 100
	MaxLocationLength = 255
)

type Name struct {
	value string
}

// NewName trims surrounding space. Matching against legacy bookings is
// exact and case-sensitive, so no further normalization happens here.
func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" || utf8.RuneCountInString(t) > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }

func normalizeOptional(s string, max int, invalid error) (string, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > max {
		return "", invalid
	}
	return t, nil
}
