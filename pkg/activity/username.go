package activity

import (
	"errors"
	"fmt"
	"regexp"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,39}$`)

// ErrInvalidUsername matches every username validation failure.
var ErrInvalidUsername = errors.New("invalid GitHub username")

// InvalidUsernameError carries the rejected username.
type InvalidUsernameError struct {
	Username string
}

func (e *InvalidUsernameError) Error() string {
	return fmt.Sprintf("%s is an invalid GitHub username", e.Username)
}

func (e *InvalidUsernameError) Is(target error) bool {
	return target == ErrInvalidUsername
}

// ValidateUsername returns name unchanged when it is 1-39 characters of
// letters, digits, hyphen or underscore.
func ValidateUsername(name string) (string, error) {
	if !usernamePattern.MatchString(name) {
		return "", &InvalidUsernameError{Username: name}
	}
	return name, nil
}
