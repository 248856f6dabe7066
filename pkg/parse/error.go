// File: error.go
// Title: Parse Error Model
// Description: Defines the error values produced by parsers. An error
//              carries the input view at the point of failure and a code
//              describing what was expected. Codes are either recoverable
//              mismatches, which combinators may backtrack from, or hard
//              failures, which abort the whole parse.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-18 v0.1.0: Initial error model

package parse

import (
	"fmt"
)

// Kind classifies a parse error code
type Kind int

const (
	// KindFailure marks a hard, non-recoverable failure carrying a Reason
	KindFailure Kind = iota

	// KindNoInput reports that a parser required input but none was left
	KindNoInput

	// KindChar reports that a specific character was expected
	KindChar

	// KindLineBreak reports that a line break (LF or CRLF) was expected
	KindLineBreak

	// KindPredicate reports that a parsed value was rejected by a predicate
	KindPredicate
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindFailure:
		return "failure"
	case KindNoInput:
		return "no-input"
	case KindChar:
		return "char"
	case KindLineBreak:
		return "line-break"
	case KindPredicate:
		return "predicate"
	default:
		return "unknown"
	}
}

// ReasonKind distinguishes why a hard failure cannot be recovered from
type ReasonKind int

const (
	// ReasonSystem marks an inconsistent internal engine state
	ReasonSystem ReasonKind = iota

	// ReasonInvalidInput marks input positively identified as invalid
	// for the grammar being parsed
	ReasonInvalidInput
)

// Reason describes a hard failure. For ReasonInvalidInput, Expected holds
// a human-readable description of what the grammar expected instead.
type Reason struct {
	Kind     ReasonKind
	Expected string
}

// InvalidInput builds a Reason reporting structurally invalid input
func InvalidInput(expected string) Reason {
	return Reason{Kind: ReasonInvalidInput, Expected: expected}
}

// SystemFailure builds a Reason reporting an internal engine defect
func SystemFailure() Reason {
	return Reason{Kind: ReasonSystem}
}

// Code identifies where and why parsing stopped. Codes are comparable, so
// tests and callers can match them with ==.
type Code struct {
	Kind   Kind
	Char   rune   // expected character, set for KindChar
	Reason Reason // failure reason, set for KindFailure
}

// Recoverable mismatch codes without payload
var (
	// NoInput is returned when a parser needed input but none was left
	NoInput = Code{Kind: KindNoInput}

	// LineBreakExpected is returned when neither LF nor CRLF was found
	LineBreakExpected = Code{Kind: KindLineBreak}

	// PredicateFailed is returned when a predicate rejected a parsed value
	PredicateFailed = Code{Kind: KindPredicate}

	// EndOfInput is the sentinel for running out of input while matching
	// a character. It is the NUL variant of a character code.
	EndOfInput = Code{Kind: KindChar, Char: 0}
)

// CharCode builds the code for an expected character
func CharCode(r rune) Code {
	return Code{Kind: KindChar, Char: r}
}

// FailureCode builds the code for a hard failure with the given reason
func FailureCode(reason Reason) Code {
	return Code{Kind: KindFailure, Reason: reason}
}

// String returns a human-readable description of the code
func (c Code) String() string {
	switch c.Kind {
	case KindFailure:
		if c.Reason.Kind == ReasonInvalidInput {
			return fmt.Sprintf("invalid input, expected %s", c.Reason.Expected)
		}
		return "internal parser failure"
	case KindNoInput:
		return "no input"
	case KindChar:
		if c == EndOfInput {
			return "unexpected end of input"
		}
		return fmt.Sprintf("expected character %q", c.Char)
	case KindLineBreak:
		return "expected line break"
	case KindPredicate:
		return "value rejected by predicate"
	default:
		return "unknown parse error"
	}
}

// Error is a parse error. Input holds the view of the input at the point
// of failure; it is always a suffix of (or equal to) the input originally
// given to the failing parser. Composing parsers use it to decide where
// to resume.
type Error[I any] struct {
	Input I
	Code  Code
}

// NewError creates a recoverable error with the given code
func NewError[I any](input I, code Code) *Error[I] {
	return &Error[I]{Input: input, Code: code}
}

// Failure creates a hard, non-recoverable error with the given reason
func Failure[I any](input I, reason Reason) *Error[I] {
	return &Error[I]{Input: input, Code: FailureCode(reason)}
}

// IsFailure reports whether the error is a hard failure. This single
// signal is what combinators consult to decide whether backtracking is
// still allowed.
func (e *Error[I]) IsFailure() bool {
	return e.Code.Kind == KindFailure
}

// Error implements the standard error interface
func (e *Error[I]) Error() string {
	return e.Code.String()
}

// Offset returns the byte offset of the error within the full input the
// parse started from. The error's input view is a suffix of full, so the
// offset is the length difference.
func Offset(full string, err *Error[string]) int {
	return len(full) - len(err.Input)
}
