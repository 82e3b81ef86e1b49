package model

import (
	"errors"
	"fmt"
)

// ErrAlertNotFound is returned when the requested alert id does not exist.
var ErrAlertNotFound = errors.New("alert not found")

// ValidationError marks a user-correctable input problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// UploadError wraps a media store upload failure. The enclosing operation is
// aborted; no record may reference an asset that was never stored.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("media upload failed: %v", e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }
