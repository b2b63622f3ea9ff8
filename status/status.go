/*
Copyright 2026 Polyglot Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package status provides an error code enumeration, a Status error value
// carrying a code and a message, and a generic fallible-result container
// used to propagate operation outcomes across the library without
// exceptions or ad hoc sentinel values.
//
// The code set mirrors the canonical codes used by most RPC systems, so
// failures can cross process boundaries without translation.
package status

import (
	"fmt"
	"strconv"
)

// Code is a canonical error code. CodeOK indicates success; every other
// code indicates a particular class of failure.
type Code int

// The canonical error codes.
const (
	CodeOK Code = iota
	CodeCancelled
	CodeUnknown
	CodeInvalidArgument
	CodeDeadlineExceeded
	CodeNotFound
	CodeAlreadyExists
	CodePermissionDenied
	CodeResourceExhausted
	CodeFailedPrecondition
	CodeAborted
	CodeOutOfRange
	CodeUnimplemented
	CodeInternal
	CodeUnavailable
	CodeDataLoss
	CodeUnauthenticated
)

var codeNames = [...]string{
	CodeOK:                 "OK",
	CodeCancelled:          "CANCELLED",
	CodeUnknown:            "UNKNOWN",
	CodeInvalidArgument:    "INVALID_ARGUMENT",
	CodeDeadlineExceeded:   "DEADLINE_EXCEEDED",
	CodeNotFound:           "NOT_FOUND",
	CodeAlreadyExists:      "ALREADY_EXISTS",
	CodePermissionDenied:   "PERMISSION_DENIED",
	CodeResourceExhausted:  "RESOURCE_EXHAUSTED",
	CodeFailedPrecondition: "FAILED_PRECONDITION",
	CodeAborted:            "ABORTED",
	CodeOutOfRange:         "OUT_OF_RANGE",
	CodeUnimplemented:      "UNIMPLEMENTED",
	CodeInternal:           "INTERNAL",
	CodeUnavailable:        "UNAVAILABLE",
	CodeDataLoss:           "DATA_LOSS",
	CodeUnauthenticated:    "UNAUTHENTICATED",
}

// String returns the canonical upper-case name of the code, or the decimal
// value for a code outside the canonical range.
func (c Code) String() string {
	if c >= 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "CODE(" + strconv.Itoa(int(c)) + ")"
}

// Status describes the outcome of an operation as a code plus an optional
// human-readable message. A Status is immutable after construction and
// implements the error interface.
type Status struct {
	code    Code
	message string
}

// Well-known statuses. OK is the canonical success status returned by
// Result.Status on a successful container; Unknown is the canonical
// unspecified failure.
var (
	OK      = &Status{code: CodeOK}
	Unknown = &Status{code: CodeUnknown}
)

// New creates a Status with the given code and message.
func New(code Code, message string) *Status {
	return &Status{code: code, message: message}
}

// Newf creates a Status with the given code and a formatted message.
func Newf(code Code, format string, args ...any) *Status {
	return &Status{code: code, message: fmt.Sprintf(format, args...)}
}

// Code returns the canonical code of the Status. A nil Status is OK.
func (s *Status) Code() Code {
	if s == nil {
		return CodeOK
	}
	return s.code
}

// Message returns the message of the Status, which may be empty.
func (s *Status) Message() string {
	if s == nil {
		return ""
	}
	return s.message
}

// Ok reports whether the Status carries CodeOK.
func (s *Status) Ok() bool {
	return s.Code() == CodeOK
}

// Error formats the Status as "CODE: message", or just the code name when
// the message is empty. It implements the error interface.
func (s *Status) Error() string {
	if s.Message() == "" {
		return s.Code().String()
	}
	return s.Code().String() + ": " + s.Message()
}

// Is reports whether target is a *Status with the same code, so that
// errors.Is(err, status.Unknown) matches any UNKNOWN status regardless of
// its message.
func (s *Status) Is(target error) bool {
	t, ok := target.(*Status)
	return ok && s.Code() == t.Code()
}
