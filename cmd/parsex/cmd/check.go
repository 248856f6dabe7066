package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/parsex/internal/reader"
	mdwlog "github.com/msto63/parsex/pkg/core/log"
	"github.com/msto63/parsex/pkg/csv"
	"github.com/msto63/parsex/pkg/parse"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate documents without printing them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			printError("loading configuration", err)
			return err
		}
		logger := newLogger(cfg)

		failures := 0
		for _, path := range args {
			if err := checkFile(path, cfg.GetInt("parser.max_input", 0), logger); err != nil {
				failures++
				continue
			}
		}
		if failures > 0 {
			return fmt.Errorf("%d of %d documents invalid", failures, len(args))
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkFile validates one document and prints a one-line verdict
func checkFile(path string, maxInput int, logger *mdwlog.Logger) error {
	input, err := reader.ReadFile(path)
	if err != nil {
		printError("reading input", err)
		return err
	}

	parser := csv.New(csv.Options{
		Logger:         logger,
		MaxInputLength: maxInput,
	})

	doc, err := parser.Parse(input)
	if err != nil {
		if perr, ok := err.(*parse.Error[string]); ok {
			fmt.Fprintf(os.Stderr, "%s: INVALID: %s at byte offset %d\n",
				path, perr.Error(), parse.Offset(input, perr))
		} else {
			fmt.Fprintf(os.Stderr, "%s: INVALID: %v\n", path, err)
		}
		return err
	}

	arity := 0
	if len(doc) > 0 {
		arity = len(doc[0])
	}
	fmt.Printf("%s: OK (%d records, %d fields each)\n", path, len(doc), arity)
	return nil
}
