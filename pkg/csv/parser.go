// File: parser.go
// Title: Configurable Document Parser
// Description: Provides a small configurable front end around the pure
//              grammar functions for callers that want logging and input
//              limits behind an Options-based constructor. Library users
//              that need the raw combinator results keep using
//              ParseDocument directly.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-20 v0.1.0: Initial configurable parser

package csv

import (
	"fmt"

	mdwlog "github.com/msto63/parsex/pkg/core/log"
	"github.com/msto63/parsex/pkg/parse"
)

// Options configures a Parser
type Options struct {
	// Logger receives debug and warning entries around each parse;
	// nil selects the package default logger.
	Logger *mdwlog.Logger

	// MaxInputLength rejects documents above this many bytes before
	// parsing starts. Zero means no limit.
	MaxInputLength int
}

// Parser wraps the document grammar with logging and input validation
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// New creates a new document parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Parser{
		logger:  opts.Logger.WithField("component", "csv-parser"),
		options: opts,
	}
}

// Parse parses a complete document and returns its records. A parse
// error is returned as-is, so callers can inspect its code and input
// view; the input length guard reports a plain error.
func (p *Parser) Parse(input string) (Document, error) {
	if p.options.MaxInputLength > 0 && len(input) > p.options.MaxInputLength {
		return nil, fmt.Errorf("input exceeds maximum length: %d > %d",
			len(input), p.options.MaxInputLength)
	}

	p.logger.Debug("Starting document parse", mdwlog.Fields{
		"length": len(input),
	})

	_, doc, err := ParseDocument(input)
	if err != nil {
		p.logger.Warn("Document parse failed", mdwlog.Fields{
			"offset": parse.Offset(input, err),
			"error":  err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("Document parse completed", mdwlog.Fields{
		"records": len(doc),
	})
	return doc, nil
}
