// SPDX-License-Identifier: MIT

// Package errs defines the closed set of error conditions raised across the
// module. Every condition belongs to exactly one Category and carries one
// enumerated Code; callers match with errors.Is against the exported
// sentinels and may inspect the category with CategoryOf.
//
// Raising packages wrap conditions with call-site context:
//
//	return fmt.Errorf("Ref.CopyFrom: %w", errs.New(errs.SizeMismatch, "sizes %d and %d", a, b))
//
// errors.Is(err, errs.ErrSizeMismatch) remains true through any number of
// %w wraps, independent of the message.
package errs

import (
	"errors"
	"fmt"
)

// Category groups related codes.
type Category uint8

const (
	// Logic conditions report internal misuse or unimplemented paths.
	Logic Category = iota
	// System conditions report failures of the host environment.
	System
	// Numeric conditions report arithmetic failures.
	Numeric
	// Input conditions report invalid arguments from the caller.
	Input
	// DataFormat conditions report malformed serialized data.
	DataFormat
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Logic:
		return "logic"
	case System:
		return "system"
	case Numeric:
		return "numeric"
	case Input:
		return "input"
	case DataFormat:
		return "data format"
	default:
		return fmt.Sprintf("category(%d)", uint8(c))
	}
}

// Code is a specific condition inside a Category.
type Code uint8

const (
	// IllegalState is a logic condition: an object was used in a state that does not allow the call.
	IllegalState Code = iota + 1
	// NotImplemented is a logic condition.
	NotImplemented
	// NotInitialized is a logic condition.
	NotInitialized

	// FileNotFound is a system condition.
	FileNotFound
	// FileNotWritable is a system condition.
	FileNotWritable

	// DivideByZero is a numeric condition.
	DivideByZero
	// Overflow is a numeric condition.
	Overflow
	// DidNotConverge is a numeric condition raised by iterative solvers.
	DidNotConverge

	// BadStringFormat is an input condition.
	BadStringFormat
	// BadData is an input condition.
	BadData
	// IndexOutOfRange is an input condition.
	IndexOutOfRange
	// InvalidArgument is an input condition.
	InvalidArgument
	// InvalidSize is an input condition.
	InvalidSize
	// NullReference is an input condition.
	NullReference
	// SizeMismatch is an input condition.
	SizeMismatch
	// TypeMismatch is an input condition; vector orientation mismatches use it.
	TypeMismatch
	// VersionMismatch is an input condition.
	VersionMismatch

	// BadFormat is a data-format condition.
	BadFormat
	// IllegalValue is a data-format condition.
	IllegalValue
	// AbruptEnd is a data-format condition.
	AbruptEnd
)

var codeNames = map[Code]string{
	IllegalState:    "illegal state",
	NotImplemented:  "not implemented",
	NotInitialized:  "not initialized",
	FileNotFound:    "file not found",
	FileNotWritable: "file not writable",
	DivideByZero:    "divide by zero",
	Overflow:        "overflow",
	DidNotConverge:  "did not converge",
	BadStringFormat: "bad string format",
	BadData:         "bad data",
	IndexOutOfRange: "index out of range",
	InvalidArgument: "invalid argument",
	InvalidSize:     "invalid size",
	NullReference:   "null reference",
	SizeMismatch:    "size mismatch",
	TypeMismatch:    "type mismatch",
	VersionMismatch: "version mismatch",
	BadFormat:       "bad format",
	IllegalValue:    "illegal value",
	AbruptEnd:       "abrupt end",
}

// String returns the human readable code name.
func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}

	return fmt.Sprintf("code(%d)", uint8(c))
}

// Category reports the family the code belongs to.
func (c Code) Category() Category {
	switch {
	case c <= NotInitialized:
		return Logic
	case c <= FileNotWritable:
		return System
	case c <= DidNotConverge:
		return Numeric
	case c <= VersionMismatch:
		return Input
	default:
		return DataFormat
	}
}

// Error is a categorized condition with an optional message.
type Error struct {
	Code    Code
	Message string
}

// Error renders "<category>: <code>[: message]".
func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code.Category().String() + ": " + e.Code.String()
	}

	return e.Code.Category().String() + ": " + e.Code.String() + ": " + e.Message
}

// Is matches any *Error with the same Code, so a sentinel matches every
// message-bearing instance of its code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Code == e.Code
}

// Category reports the family of the condition.
func (e *Error) Category() Category { return e.Code.Category() }

// New builds a condition with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CategoryOf extracts the category of the first *Error in err's chain.
func CategoryOf(err error) (Category, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}

	return e.Code.Category(), true
}

// CodeOf extracts the code of the first *Error in err's chain.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}

	return e.Code, true
}

// Sentinels, one per code.
var (
	ErrIllegalState    = &Error{Code: IllegalState}
	ErrNotImplemented  = &Error{Code: NotImplemented}
	ErrNotInitialized  = &Error{Code: NotInitialized}
	ErrFileNotFound    = &Error{Code: FileNotFound}
	ErrFileNotWritable = &Error{Code: FileNotWritable}
	ErrDivideByZero    = &Error{Code: DivideByZero}
	ErrOverflow        = &Error{Code: Overflow}
	ErrDidNotConverge  = &Error{Code: DidNotConverge}
	ErrBadStringFormat = &Error{Code: BadStringFormat}
	ErrBadData         = &Error{Code: BadData}
	ErrIndexOutOfRange = &Error{Code: IndexOutOfRange}
	ErrInvalidArgument = &Error{Code: InvalidArgument}
	ErrInvalidSize     = &Error{Code: InvalidSize}
	ErrNullReference   = &Error{Code: NullReference}
	ErrSizeMismatch    = &Error{Code: SizeMismatch}
	ErrTypeMismatch    = &Error{Code: TypeMismatch}
	ErrVersionMismatch = &Error{Code: VersionMismatch}
	ErrBadFormat       = &Error{Code: BadFormat}
	ErrIllegalValue    = &Error{Code: IllegalValue}
	ErrAbruptEnd       = &Error{Code: AbruptEnd}
)
