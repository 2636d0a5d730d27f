package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidDisplayName = errors.New("display name must be 1-100 characters")
	ErrPasswordTooWeak    = errors.New("password must be at least 8 characters long")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type DisplayName struct {
	value string
}

func NewDisplayName(s string) (DisplayName, error) {
	t := strings.TrimSpace(s)
	if t == "" || utf8.RuneCountInString(t) > 100 {
		return DisplayName{}, ErrInvalidDisplayName
	}
	return DisplayName{value: t}, nil
}

func (d DisplayName) String() string {
	return d.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
