// File: csv.go
// Title: Tabular Grammar Rules
// Description: Implements field, record, and document parsers for the
//              RFC4180-style tabular format on top of the parse engine.
//              Field values are decoded into newly allocated strings;
//              the engine's input views are never retained.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-19 v0.1.0: Initial grammar rules

package csv

import (
	"github.com/msto63/parsex/pkg/parse"
)

// Record is one ordered group of decoded field strings
type Record []string

// Document is the full ordered sequence of records parsed from input
type Document []Record

var (
	anyChar   = parse.Parser[string, rune](parse.AnyChar)
	lineBreak = parse.Parser[string, string](parse.LineBreak)
	comma     = parse.Char(',')
	dquote    = parse.Char('"')
)

// isSpecial reports whether r may not appear in a non-escaped field
func isSpecial(r rune) bool {
	return r == ',' || r == '"' || r == '\r' || r == '\n'
}

func runesToString(rs []rune) string {
	return string(rs)
}

// nonEscaped matches zero or more non-special characters. It cannot fail,
// so it is the terminal alternative of the field rule.
var nonEscaped = parse.Map(
	parse.ZeroOrMore(anyChar.Iff(func(r rune) bool { return !isSpecial(r) })),
	runesToString,
)

// escaped matches a double-quoted field. Inside the quotes any character
// except a quote is taken verbatim, and a doubled quote decodes to one
// literal quote. The rule only fails, recoverably, when the input does
// not start with a quote; an unterminated quote simply exhausts the
// repetition and then misses the closing quote.
var escaped = parse.Map(
	parse.RightFromPair(dquote,
		parse.LeftFromPair(
			parse.ZeroOrMore(
				anyChar.Iff(func(r rune) bool { return r != '"' }).
					FallbackOn(parse.LeftFromPair(dquote, dquote)),
			),
			dquote,
		),
	),
	runesToString,
)

var fieldParser = escaped.FallbackOn(nonEscaped)

// Field parses a single, possibly quoted field. The empty input yields
// an empty field and no error.
func Field(input string) (string, string, *parse.Error[string]) {
	return fieldParser(input)
}

// ParseRecord parses one record of at least one field. Subsequent fields
// are each introduced by a comma. An empty input is rejected with a
// no-input error; the grammar comment in doc.go explains why this
// restriction is deliberate.
func ParseRecord(input string) (string, Record, *parse.Error[string]) {
	if len(input) == 0 {
		return input, nil, parse.NewError(input, parse.NoInput)
	}
	rest, first, err := fieldParser(input)
	if err != nil {
		return rest, nil, err
	}
	rest, more, err := parse.ZeroOrMore(parse.RightFromPair(comma, fieldParser))(rest)
	if err != nil {
		return rest, nil, err
	}
	fields := make(Record, 0, 1+len(more))
	fields = append(fields, first)
	fields = append(fields, more...)
	return rest, fields, nil
}

// ParseDocument parses a full document. The first record determines the
// expected field count; every following record is accepted only if its
// count matches, otherwise parsing stops with a hard failure instead of
// silently truncating the document. Records are separated by exactly one
// line break and a single trailing line break is permitted. On full
// success the returned remainder is the empty string.
func ParseDocument(input string) (string, Document, *parse.Error[string]) {
	record := parse.Parser[string, Record](ParseRecord)

	var doc Document
	rest, more, err := parse.AndThenMap(record, func(first Record) parse.Parser[string, []Record] {
		want := len(first)
		doc = append(doc, first)
		return parse.ZeroOrMore(parse.RightFromPair(lineBreak,
			record.IffOrInvalid(
				func(rec Record) bool { return len(rec) == want },
				"more fields in this record",
			),
		))
	})(input)
	if err != nil {
		return "", nil, err
	}
	doc = append(doc, more...)

	if len(rest) == 0 {
		return "", doc, nil
	}
	if after, _, lbErr := parse.LineBreak(rest); lbErr == nil && after == "" {
		return "", doc, nil
	}
	// Reaching a non-empty remainder without a clean line-break boundary
	// means the trailing input is malformed.
	return "", nil, parse.Failure(rest, parse.InvalidInput("comma or a line break"))
}
