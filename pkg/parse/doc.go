// Package parse provides a small parser-combinator engine for parsex.
//
// Package: parse
// Title: parsex Parser Combinator Engine
// Description: This package implements the generic parsing core of parsex:
//              a uniform parser contract, an error model that separates
//              recoverable mismatches from hard failures, character-level
//              primitive parsers, and a combinator library for sequencing,
//              repetition, fallback with backtracking, mapping, and
//              predicate-based acceptance.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-18 v0.1.0: Initial engine implementation
//
// Features:
// - Parser[I, O] as a plain function type; any function with the right
//   signature is a parser without adaptation
// - Error[I] values carrying the input view at the point of failure
// - Recoverable errors drive backtracking; hard failures abort the parse
// - Combinators: Map, AndThenMap, Pair, LeftFromPair, RightFromPair,
//   ZeroOrMore, FallbackOn, Iff, IffOrInvalid
// - UTF-8 aware character primitives: Char, AnyChar, LineBreak
//
// Usage:
//   import "github.com/msto63/parsex/pkg/parse"
//
//   digits := parse.ZeroOrMore(parse.Parser[string, rune](parse.AnyChar).
//     Iff(unicode.IsDigit))
//   rest, out, err := digits("123abc")
//   // rest == "abc", out == ['1', '2', '3'], err == nil
//
// The engine performs no I/O and holds no shared state; every parser is a
// pure value that may be reused and called any number of times.
package parse
