// File: combinators.go
// Title: Generic Parser Combinators
// Description: Combinators that change the output type of a parser:
//              mapping, monadic binding, pairing with projections, and
//              repetition. Each preserves the engine contract: successful
//              results leave a suffix of the input, and hard failures are
//              never downgraded to recoverable errors.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-18 v0.1.0: Initial combinator set

package parse

// Map returns a parser that applies fn to the output of p. Errors pass
// through unchanged; no input is moved beyond what p consumed.
func Map[I, O1, O2 any](p Parser[I, O1], fn func(O1) O2) Parser[I, O2] {
	return func(input I) (I, O2, *Error[I]) {
		rest, out, err := p(input)
		if err != nil {
			var zero O2
			return rest, zero, err
		}
		return rest, fn(out), nil
	}
}

// AndThenMap is the monadic bind: it applies fn to the output of first to
// construct a new parser, then runs that parser on the remaining input.
// This lets later rules depend on earlier parsed values.
func AndThenMap[I, O1, O2 any](first Parser[I, O1], fn func(O1) Parser[I, O2]) Parser[I, O2] {
	return func(input I) (I, O2, *Error[I]) {
		rest, out, err := first(input)
		if err != nil {
			var zero O2
			return rest, zero, err
		}
		return fn(out)(rest)
	}
}

// PairResult holds the two outputs of a Pair parser
type PairResult[O1, O2 any] struct {
	Left  O1
	Right O2
}

// Pair runs left, then right on the remainder, returning both outputs.
// An error from right is re-wrapped with the pair's original input so
// that an enclosing fallback retries the whole pair rather than resuming
// mid-sequence; the error code, and with it failure-ness, is preserved.
func Pair[I, O1, O2 any](left Parser[I, O1], right Parser[I, O2]) Parser[I, PairResult[O1, O2]] {
	return func(input I) (I, PairResult[O1, O2], *Error[I]) {
		var zero PairResult[O1, O2]
		rest, lout, err := left(input)
		if err != nil {
			return rest, zero, err
		}
		rest, rout, err := right(rest)
		if err != nil {
			return input, zero, NewError(input, err.Code)
		}
		return rest, PairResult[O1, O2]{Left: lout, Right: rout}, nil
	}
}

// LeftFromPair parses a pair and keeps only the left output, typically to
// consume and discard a trailing delimiter.
func LeftFromPair[I, O1, O2 any](left Parser[I, O1], right Parser[I, O2]) Parser[I, O1] {
	return Map(Pair(left, right), func(pr PairResult[O1, O2]) O1 {
		return pr.Left
	})
}

// RightFromPair parses a pair and keeps only the right output, typically
// to consume and discard a leading delimiter.
func RightFromPair[I, O1, O2 any](left Parser[I, O1], right Parser[I, O2]) Parser[I, O2] {
	return Map(Pair(left, right), func(pr PairResult[O1, O2]) O2 {
		return pr.Right
	})
}

// ZeroOrMore repeatedly applies p, accumulating outputs, until p fails.
// A recoverable terminal failure ends the repetition successfully with
// the outputs collected so far, positioned at the start of the failed
// attempt. A hard failure anywhere in the loop poisons the whole
// repetition and propagates, even if prefix repetitions succeeded. Zero
// matches is a valid outcome. Termination is guaranteed as long as p
// consumes at least one unit of input on every success.
func ZeroOrMore[I, O any](p Parser[I, O]) Parser[I, []O] {
	return func(input I) (I, []O, *Error[I]) {
		var outputs []O
		for {
			rest, out, err := p(input)
			if err != nil {
				if err.IsFailure() {
					return input, nil, err
				}
				return err.Input, outputs, nil
			}
			input = rest
			outputs = append(outputs, out)
		}
	}
}
