package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/parsex/pkg/core/config"
	mdwlog "github.com/msto63/parsex/pkg/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "parsex",
	Short: "parsex - parser combinator toolkit for tabular text",
	Long: `parsex parses RFC4180-style tabular text (CSV) with a strict,
backtracking parser-combinator engine.

Commands:
  parse    - parse a document and print its records
  check    - validate documents without printing them
  view     - browse a document in an interactive table
  import   - load a document into a SQLite table`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./parsex.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// configDefaults are the built-in settings, overridable per file or env
var configDefaults = map[string]interface{}{
	"log.level":         "info",
	"log.format":        "text",
	"parser.max_input":  0,
	"import.batch_size": 500,
	"view.max_width":    32,
}

// loadConfig resolves the configuration from the --config flag, the
// working directory, or the user config directory, falling back to the
// built-in defaults when no file exists.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		for _, candidate := range configCandidates() {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path == "" {
		return config.NewFromDefaults(configDefaults, "PARSEX"), nil
	}
	return config.LoadWithOptions(path, config.LoadOptions{
		EnvPrefix: "PARSEX",
		Defaults:  configDefaults,
	})
}

func configCandidates() []string {
	candidates := []string{"parsex.toml", "parsex.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config", "parsex", "parsex.toml"))
	}
	return candidates
}

// newLogger builds the CLI logger from configuration. Each invocation
// gets a run ID so log lines from one run can be correlated.
func newLogger(cfg *config.Config) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.GetString("log.level", "info"))
	if err != nil {
		level = mdwlog.DefaultLevel()
	}
	if verbose {
		level = mdwlog.LevelDebug
	}

	format, err := mdwlog.ParseFormat(cfg.GetString("log.format", "text"))
	if err != nil {
		format = mdwlog.FormatText
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "parsex",
	}).WithField("run_id", uuid.NewString())
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
