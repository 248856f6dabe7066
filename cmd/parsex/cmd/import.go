package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/parsex/internal/store"
)

var (
	importDB     string
	importTable  string
	importHeader bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load a document into a SQLite table",
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

		table := importTable
		if table == "" {
			table = tableNameFromPath(args[0])
		}

		s, err := store.Open(store.Options{
			Path:      importDB,
			BatchSize: cfg.GetInt("import.batch_size", 500),
			Logger:    logger,
		})
		if err != nil {
			printError("opening database", err)
			return err
		}
		defer s.Close()

		rows, err := s.ImportDocument(context.Background(), table, doc, importHeader)
		if err != nil {
			printError("importing document", err)
			return err
		}

		fmt.Printf("%s: imported %d rows into table %q (%s)\n",
			args[0], rows, table, importDB)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importDB, "db", "parsex.db", "SQLite database file")
	importCmd.Flags().StringVar(&importTable, "table", "", "target table name (default: file name)")
	importCmd.Flags().BoolVar(&importHeader, "header", false, "use the first record as column names")
	rootCmd.AddCommand(importCmd)
}

// tableNameFromPath derives a usable table name from the input file name
func tableNameFromPath(path string) string {
	name := filepath.Base(path)
	for ext := filepath.Ext(name); ext != ""; ext = filepath.Ext(name) {
		name = strings.TrimSuffix(name, ext)
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" {
		name = "document"
	}
	return name
}
