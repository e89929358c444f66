package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain failure. Every kind maps to exactly one HTTP
// status code; anything that reaches the wire without a known kind is
// rendered as Unclassified.
type Kind int

const (
	Unclassified Kind = iota
	BadRequest
	Unauthenticated
	NotFound
	Conflict
	Storage
)

var statusByKind = map[Kind]int{
	BadRequest:      http.StatusBadRequest,
	Unauthenticated: http.StatusUnauthorized,
	NotFound:        http.StatusNotFound,
	Conflict:        http.StatusConflict,
	Storage:         http.StatusInternalServerError,
	Unclassified:    http.StatusInternalServerError,
}

// Failure is a classified domain error carrying the message that goes on
// the wire and, optionally, the underlying cause.
type Failure struct {
	Kind    Kind
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Message, f.Err)
	}
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Status returns the HTTP status code for the failure's kind.
func (f *Failure) Status() int {
	if code, ok := statusByKind[f.Kind]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// New builds a failure with the given kind and wire message.
func New(kind Kind, message string) *Failure {
	return &Failure{Kind: kind, Message: message}
}

// Wrap builds a failure keeping the underlying cause for verbose rendering.
func Wrap(kind Kind, message string, err error) *Failure {
	return &Failure{Kind: kind, Message: message, Err: err}
}

// FromStorage classifies an error reported by the store. The raw message is
// kept so the standard and verbose verbosity levels can show it; the minimal
// level rewrites it to a generic one at render time.
func FromStorage(err error) *Failure {
	return &Failure{Kind: Storage, Message: err.Error(), Err: err}
}

// AsFailure extracts a *Failure from err, or wraps err as Unclassified with
// a generic message so no internal detail leaks by accident.
func AsFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return &Failure{Kind: Unclassified, Message: "Internal Error", Err: err}
}

// Predeclared failures, one per distinct domain condition.
var (
	ErrMissingData      = New(BadRequest, "Missing Data")
	ErrMissingParameter = New(BadRequest, "Missing parameter")
	ErrBadCredentials   = New(BadRequest, "Bad email or password")
	ErrBadEmail         = New(BadRequest, "Bad email format")

	ErrAccountNotFound = New(Unauthenticated, "This account does not exist !")
	ErrWrongPassword   = New(Unauthenticated, "Wrong password")
	ErrNoToken         = New(Unauthenticated, "No token provided")
	ErrInvalidToken    = New(Unauthenticated, "Invalid token")

	ErrUserNotFound      = New(NotFound, "This user does not exist !")
	ErrTechniqueNotFound = New(NotFound, "This technique does not exist !")
)

// UserConflict reports a uniqueness violation on user creation.
func UserConflict(lastName string) *Failure {
	return New(Conflict, fmt.Sprintf("The user %s already exists !", lastName))
}

// TechniqueConflict reports a uniqueness violation on technique creation.
func TechniqueConflict(name string) *Failure {
	return New(Conflict, fmt.Sprintf("The technique %s already exists !", name))
}
