package models

import (
	"crypto/subtle"
	"fmt"

	"github.com/rs/zerolog"
)

// Credentials represents a username/password pair kept in the secret store
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Matches reports whether both supplied values equal the stored pair exactly
func (c Credentials) Matches(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(c.Username), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(c.Password), []byte(password)) == 1
	return userOK && passOK
}

// IsComplete returns true if both fields are populated
func (c Credentials) IsComplete() bool {
	return c.Username != "" && c.Password != ""
}

// String keeps the password out of fmt output
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{Username: %q, Password: [REDACTED]}", c.Username)
}

// MarshalZerologObject keeps the password out of structured logs
func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", c.Username).Str("password", "[REDACTED]")
}
