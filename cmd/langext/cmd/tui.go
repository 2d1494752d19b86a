package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/langext/internal/tui/parseview"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Startet die interaktive Ansicht",
	Long: `Startet eine interaktive Ansicht, die jede Eingabe sofort als
Zahlenfolge, Datum und Uhrzeit auswertet.

Navigation:
  Enter     - Eingabe in den Verlauf übernehmen
  Ctrl+L    - Eingabe und Verlauf leeren
  Esc       - Beenden`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	p, err := currentParser()
	if err != nil {
		return err
	}

	program := tea.NewProgram(
		parseview.New(p),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	if _, err := program.Run(); err != nil {
		logger.ErrorWithErr("TUI Fehler", err)
		return err
	}
	return nil
}
