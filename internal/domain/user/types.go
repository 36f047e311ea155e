package user

import (
	"errors"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email address")

// Email is the stable natural identity key received from the identity
// provider.
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" {
		return Email{}, ErrInvalidEmail
	}
	at := strings.Index(trimmed, "@")
	if at <= 0 || at == len(trimmed)-1 {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) IsZero() bool {
	return e.value == ""
}

// Profile is the verified identity payload the OAuth boundary hands over.
type Profile struct {
	Email   string
	Name    string
	Picture string
	Token   string
}
