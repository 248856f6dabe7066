// Package log provides structured logging for the parsex toolkit.
//
// Package: log
// Title: parsex Structured Logging
// Description: This package implements a leveled, structured logger with
//              contextual fields and pluggable output formats. It serves
//              the CLI and supporting layers; the parsing engine itself
//              stays a pure value-level library and never logs.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation
//
// Usage:
//   import mdwlog "github.com/msto63/parsex/pkg/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithName("parsex").
//     WithField("run_id", runID)
//
//   logger.Info("Document parsed", mdwlog.Fields{
//     "records": 42,
//   })
package log
