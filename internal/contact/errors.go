package contact

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes contact errors.
type ErrorCode string

const (
	// ErrCodeConnectionFailure indicates the backing store could not be opened.
	ErrCodeConnectionFailure ErrorCode = "CONNECTION_FAILURE"

	// ErrCodeSchema indicates the contacts table could not be created.
	ErrCodeSchema ErrorCode = "SCHEMA_ERROR"

	// ErrCodeDuplicatePhone indicates a phone number uniqueness violation.
	ErrCodeDuplicatePhone ErrorCode = "DUPLICATE_PHONE"

	// ErrCodeValidation indicates a required field was empty.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeStorage covers every other persistence failure.
	ErrCodeStorage ErrorCode = "STORAGE_ERROR"
)

// Error is the typed error returned by every contact operation.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Op names the operation that failed (e.g. "insert contact").
	Op string

	// PhoneNo is the offending phone number for DUPLICATE_PHONE.
	PhoneNo string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewDuplicatePhoneError creates the error reported when phoneNo is taken.
func NewDuplicatePhoneError(op, phoneNo string, cause error) *Error {
	return &Error{
		Code:    ErrCodeDuplicatePhone,
		Message: fmt.Sprintf("Phone number '%s' already exists.", phoneNo),
		Op:      op,
		PhoneNo: phoneNo,
		Err:     cause,
	}
}

// NewStorageError wraps a persistence failure that has no more specific code.
func NewStorageError(op string, cause error) *Error {
	return &Error{
		Code:    ErrCodeStorage,
		Message: "storage operation failed",
		Op:      op,
		Err:     cause,
	}
}

// CodeOf returns the code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) ErrorCode {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsDuplicatePhone returns true if err is a phone number uniqueness violation.
func IsDuplicatePhone(err error) bool {
	return CodeOf(err) == ErrCodeDuplicatePhone
}

// IsValidation returns true if err reports a missing required field.
func IsValidation(err error) bool {
	return CodeOf(err) == ErrCodeValidation
}

// IsConnectionFailure returns true if the backing store could not be opened.
func IsConnectionFailure(err error) bool {
	return CodeOf(err) == ErrCodeConnectionFailure
}

// IsSchemaError returns true if table setup failed.
func IsSchemaError(err error) bool {
	return CodeOf(err) == ErrCodeSchema
}
