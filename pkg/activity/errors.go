package activity

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v57/github"
)

var (
	ErrNotFound         = errors.New("user not found")
	ErrServer           = errors.New("server error")
	ErrDecode           = errors.New("decode response")
	ErrNetwork          = errors.New("network error")
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// APIError describes a failed request for one user. Kind is one of the
// package sentinels; Err is the underlying SDK or transport error.
type APIError struct {
	Kind       error
	User       string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case ErrNotFound:
		return fmt.Sprintf("username %s not found", e.User)
	case ErrServer:
		return fmt.Sprintf("server error (%d) fetching %s", e.StatusCode, e.User)
	case ErrUnexpectedStatus:
		return fmt.Sprintf("unexpected status %d fetching %s: %v", e.StatusCode, e.User, e.Err)
	default:
		return fmt.Sprintf("%v fetching %s: %v", e.Kind, e.User, e.Err)
	}
}

func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// classify maps a go-github call result onto an APIError. A nil err yields nil.
func classify(user string, resp *gh.Response, err error) error {
	if err == nil {
		return nil
	}
	status := 0
	if resp != nil && resp.Response != nil {
		status = resp.StatusCode
	}
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case status == http.StatusNotFound:
		return &APIError{Kind: ErrNotFound, User: user, StatusCode: status, Err: err}
	case status >= 500:
		return &APIError{Kind: ErrServer, User: user, StatusCode: status, Err: err}
	case status >= 200 && status < 300,
		errors.As(err, &syntaxErr),
		errors.As(err, &typeErr):
		return &APIError{Kind: ErrDecode, User: user, StatusCode: status, Err: err}
	case status != 0:
		return &APIError{Kind: ErrUnexpectedStatus, User: user, StatusCode: status, Err: err}
	default:
		return &APIError{Kind: ErrNetwork, User: user, Err: err}
	}
}
