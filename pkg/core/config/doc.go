// Package config provides configuration loading for the parsex CLI.
//
// Package: config
// Title: parsex Configuration Management
// Description: This package loads configuration from TOML and YAML files
//              with format auto-detection, optional defaults, and
//              environment variable overrides. Values are accessed with
//              dot notation keys.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation
//
// Usage:
//   cfg, err := config.LoadWithOptions("parsex.toml", config.LoadOptions{
//     EnvPrefix: "PARSEX",
//     Defaults: map[string]interface{}{
//       "log.level": "info",
//     },
//   })
//   level := cfg.GetString("log.level")
package config
