package cmd

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/parsex/internal/tui/docviewer"
)

var viewHeader bool

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse a document in an interactive table",
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

		viewCfg := docviewer.DefaultConfig()
		viewCfg.Title = filepath.Base(args[0])
		viewCfg.UseHeader = viewHeader
		viewCfg.MaxColumnWidth = cfg.GetInt("view.max_width", viewCfg.MaxColumnWidth)
		model := docviewer.New(doc, viewCfg)

		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			printError("running viewer", err)
			return err
		}
		return nil
	},
}

func init() {
	viewCmd.Flags().BoolVar(&viewHeader, "header", false, "treat the first record as a header")
	rootCmd.AddCommand(viewCmd)
}
