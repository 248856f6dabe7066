// Package csv implements the parsex tabular-format grammar.
//
// Package: csv
// Title: RFC4180 Tabular Grammar
// Description: This package expresses the CSV grammar entirely in terms
//              of the parse engine's primitives and combinators. It
//              parses a full in-memory document into ordered records of
//              decoded field strings, enforcing a uniform field count
//              across records.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-19 v0.1.0: Initial grammar implementation
//
// Grammar, derived from RFC 4180:
//
//	document    = record (linebreak record)* [linebreak]
//	record      = field (comma field)*
//	field       = escaped | non-escaped
//	escaped     = DQUOTE (text | comma | CR | LF | 2DQUOTE)* DQUOTE
//	non-escaped = text*
//	linebreak   = LF | CRLF
//
// where text is any character that is none of comma, DQUOTE, CR, LF, and
// a doubled DQUOTE inside an escaped field decodes to a literal quote.
//
// Two deliberate restrictions apply. An empty input is rejected with a
// no-input error even though the grammar technically admits a record of
// one empty field. And every record after the first must have exactly
// the first record's field count; a mismatch is a hard failure rather
// than a truncated document.
//
// The package performs no I/O: callers hand over text already
// materialized in memory and receive owned records back.
package csv
