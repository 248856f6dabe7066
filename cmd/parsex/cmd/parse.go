package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/parsex/internal/reader"
	mdwlog "github.com/msto63/parsex/pkg/core/log"
	"github.com/msto63/parsex/pkg/csv"
	"github.com/msto63/parsex/pkg/parse"
)

var (
	parseOutput string
	parsePretty bool
	parseHeader bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a document and print its records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			printError("loading configuration", err)
			return err
		}
		logger := newLogger(cfg)

		doc, err := parseFile(args[0], cfg.GetInt("parser.max_input", 0), logger)
		if err != nil {
			return err
		}

		switch {
		case parsePretty:
			printPretty(doc)
		case parseOutput == "json":
			return printJSON(doc)
		default:
			printPlain(doc)
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "plain", "output format: plain or json")
	parseCmd.Flags().BoolVar(&parsePretty, "pretty", false, "render records as a styled table")
	parseCmd.Flags().BoolVar(&parseHeader, "header", false, "treat the first record as a header")
	rootCmd.AddCommand(parseCmd)
}

// parseFile reads a document file and parses it, reporting hard failures
// with their byte offset in the input.
func parseFile(path string, maxInput int, logger *mdwlog.Logger) (csv.Document, error) {
	input, err := reader.ReadFile(path)
	if err != nil {
		printError("reading input", err)
		return nil, err
	}

	parser := csv.New(csv.Options{
		Logger:         logger,
		MaxInputLength: maxInput,
	})

	doc, err := parser.Parse(input)
	if err != nil {
		if perr, ok := err.(*parse.Error[string]); ok {
			fmt.Fprintf(os.Stderr, "%s: %s at byte offset %d\n",
				path, perr.Error(), parse.Offset(input, perr))
		} else {
			printError("parsing "+path, err)
		}
		return nil, err
	}
	return doc, nil
}

// printPlain writes records as tab-separated lines
func printPlain(doc csv.Document) {
	for _, rec := range doc {
		fmt.Println(strings.Join(rec, "\t"))
	}
}

// printJSON writes one JSON array per record
func printJSON(doc csv.Document) error {
	enc := json.NewEncoder(os.Stdout)
	for _, rec := range doc {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

var (
	prettyHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#06B6D4")).
				Bold(true)

	prettyCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8FAFC"))

	prettyRuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// printPretty renders the document as an aligned, styled table
func printPretty(doc csv.Document) {
	if len(doc) == 0 {
		return
	}

	widths := make([]int, len(doc[0]))
	for _, rec := range doc {
		for i, field := range rec {
			if len(field) > widths[i] {
				widths[i] = len(field)
			}
		}
	}

	for r, rec := range doc {
		cells := make([]string, len(rec))
		for i, field := range rec {
			padded := field + strings.Repeat(" ", widths[i]-len(field))
			if r == 0 && parseHeader {
				cells[i] = prettyHeaderStyle.Render(padded)
			} else {
				cells[i] = prettyCellStyle.Render(padded)
			}
		}
		fmt.Println(strings.Join(cells, prettyRuleStyle.Render(" | ")))
		if r == 0 && parseHeader {
			total := len(widths) * 3
			for _, w := range widths {
				total += w
			}
			fmt.Println(prettyRuleStyle.Render(strings.Repeat("-", total)))
		}
	}
}
