// File: parser.go
// Title: Parser Abstraction
// Description: Defines the uniform parser contract and the combinator
//              methods that keep the same output type. A parser consumes a
//              prefix of its input and yields the remaining input plus an
//              output value, or a parse error. Combinators that change the
//              output type live in combinators.go as generic functions,
//              since Go methods cannot introduce type parameters.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-18 v0.1.0: Initial parser abstraction

package parse

// Parser is the uniform contract all parsing units satisfy. Any function
// with this signature is a parser; no adaptation is needed beyond the
// usual Go conversion to the named type when a combinator method is
// wanted. On success the returned input is a suffix of the given input
// and the error is nil; on failure the error is non-nil and its Input
// field indicates how much was consumed before failure was detected.
type Parser[I, O any] func(input I) (I, O, *Error[I])

// Parse runs the parser on the given input
func (p Parser[I, O]) Parse(input I) (I, O, *Error[I]) {
	return p(input)
}

// FallbackOn returns a parser that retries alt from the original input
// when p fails with a recoverable error. A hard failure from p is
// returned immediately without attempting alt; this asymmetry is the
// core backtracking rule.
func (p Parser[I, O]) FallbackOn(alt Parser[I, O]) Parser[I, O] {
	return func(input I) (I, O, *Error[I]) {
		rest, out, err := p(input)
		if err == nil || err.IsFailure() {
			return rest, out, err
		}
		return alt(input)
	}
}

// Iff returns a parser that accepts p's output only when pred holds.
// A rejected output yields a recoverable predicate error positioned at
// the original input, so an enclosing fallback can retry from the start.
func (p Parser[I, O]) Iff(pred func(O) bool) Parser[I, O] {
	return func(input I) (I, O, *Error[I]) {
		rest, out, err := p(input)
		if err != nil {
			return rest, out, err
		}
		if !pred(out) {
			var zero O
			return input, zero, NewError(input, PredicateFailed)
		}
		return rest, out, nil
	}
}

// IffOrInvalid is Iff with a hard outcome: a rejected output means the
// input is structurally invalid and must not be silently retried
// elsewhere. The expected text ends up in the failure reason.
func (p Parser[I, O]) IffOrInvalid(pred func(O) bool, expected string) Parser[I, O] {
	return func(input I) (I, O, *Error[I]) {
		rest, out, err := p(input)
		if err != nil {
			return rest, out, err
		}
		if !pred(out) {
			var zero O
			return input, zero, Failure(input, InvalidInput(expected))
		}
		return rest, out, nil
	}
}
