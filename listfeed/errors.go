package listfeed

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// AuthError indicates that the credentials presented to the service were
// missing, invalid or expired.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication/authorization error (%v)", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NotFoundError indicates that a spreadsheet or worksheet does not exist or
// is not accessible to the authenticated identity.
type NotFoundError struct {
	Resource string
	Err      error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("'%s' not found (%v)", e.Resource, e.Err)
	}

	return fmt.Sprintf("'%s' not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// TransportError indicates a network or remote service failure, including a
// malformed response. Operations are never retried - the caller decides
// whether the failure is worth retrying.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("unable to %s (%v)", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ValidationError indicates a row with a column that is not in the worksheet
// header.
type ValidationError struct {
	Column string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("no column '%s' in worksheet header", e.Column)
}

// OutOfRangeError indicates a row position outside the currently existing
// rows.
type OutOfRangeError struct {
	Position int
	Rows     int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("row %d out of range (%d rows)", e.Position, e.Rows)
}

// classify maps an error from the Google client libraries onto the package
// error taxonomy. resource, when not empty, names the spreadsheet/worksheet
// the operation was scoped to - a 403/404 on a scoped operation means the
// resource is missing or inaccessible rather than that the credential itself
// is bad.
func classify(op, resource string, err error) error {
	var gerr *googleapi.Error

	if errors.As(err, &gerr) {
		switch {
		case resource != "" && (gerr.Code == http.StatusNotFound || gerr.Code == http.StatusForbidden):
			return &NotFoundError{Resource: resource, Err: err}

		case gerr.Code == http.StatusUnauthorized || gerr.Code == http.StatusForbidden:
			return &AuthError{Err: err}
		}
	}

	return &TransportError{Op: op, Err: err}
}
