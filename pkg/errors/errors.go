/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides structured errors with stable codes for the
// harness error taxonomy: fixture errors, expectation mismatches, report
// I/O failures, and invalid input.
package errors

import (
	"errors"
	"fmt"
)

// Code identifies an error category.
type Code string

// Error codes as constants
const (
	// ErrCodeFixture indicates a broken input fixture, such as a matrix
	// file with zero data rows.
	ErrCodeFixture Code = "FIXTURE_ERROR"

	// ErrCodeExpectation indicates that one or more rows were classified
	// differently from what their source matrix expects.
	ErrCodeExpectation Code = "EXPECTATION_MISMATCH"

	// ErrCodeReportIO indicates the run report could not be written.
	ErrCodeReportIO Code = "REPORT_IO_ERROR"

	// ErrCodeInvalidInput indicates malformed command input, such as a
	// row with the wrong number of columns.
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// StructuredError is an error carrying a stable code alongside its message.
type StructuredError struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, if any.
func (e *StructuredError) Unwrap() error {
	return e.Err
}

// New creates a StructuredError with the given code and message.
func New(code Code, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// Newf creates a StructuredError with a formatted message.
func Newf(code Code, format string, args ...any) *StructuredError {
	return &StructuredError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps err in a StructuredError with the given code and message.
func Wrap(code Code, err error, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of err if it is (or wraps) a StructuredError,
// or ErrCodeInternal otherwise.
func CodeOf(err error) Code {
	var se *StructuredError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether err is (or wraps) a StructuredError with the
// given code.
func HasCode(err error, code Code) bool {
	var se *StructuredError
	return errors.As(err, &se) && se.Code == code
}
