// File: chars.go
// Title: Character-Level Primitive Parsers
// Description: Primitive parsers operating directly on string input:
//              single-character recognizers and the line-break token.
//              All primitives are UTF-8 aware and advance by whole runes.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-18 v0.1.0: Initial character primitives

package parse

import (
	"strings"
	"unicode/utf8"
)

// Char returns a parser matching exactly one occurrence of want at the
// front of the input. A different character yields a recoverable
// character error; empty input yields the EndOfInput sentinel. In both
// cases the error carries the untouched original input.
func Char(want rune) Parser[string, rune] {
	return func(input string) (string, rune, *Error[string]) {
		r, size := utf8.DecodeRuneInString(input)
		if size == 0 {
			return input, 0, NewError(input, EndOfInput)
		}
		if r != want {
			return input, 0, NewError(input, CharCode(want))
		}
		return input[size:], want, nil
	}
}

// AnyChar consumes exactly one character regardless of value. It fails
// with the EndOfInput sentinel on empty input.
func AnyChar(input string) (string, rune, *Error[string]) {
	r, size := utf8.DecodeRuneInString(input)
	if size == 0 {
		return input, 0, NewError(input, EndOfInput)
	}
	return input[size:], r, nil
}

// LineBreak matches "\n" or "\r\n" as a single token and returns the
// matched text. The LF form is checked first; since "\n" never prefixes
// "\r\n" the order only matters in principle, not for these tokens. A
// lone "\r" is not a line break and fails recoverably.
func LineBreak(input string) (string, string, *Error[string]) {
	if strings.HasPrefix(input, "\n") {
		return input[len("\n"):], "\n", nil
	}
	if strings.HasPrefix(input, "\r\n") {
		return input[len("\r\n"):], "\r\n", nil
	}
	return input, "", NewError(input, LineBreakExpected)
}
