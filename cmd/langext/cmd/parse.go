package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/langext/utils/parsex"
)

var dateCmd = &cobra.Command{
	Use:   "date [text]",
	Short: "Datum aus freiem Text lesen",
	Long: `Liest ein Datum aus freiem Text. Nur die Zahlen zählen:

  eine Zahl     Tag im aktuellen Monat
  zwei Zahlen   Monat und Tag im aktuellen Jahr
  drei Zahlen   Monat, Tag und Jahr (zweistellige Jahre relativ zum Referenzjahr)

Beispiele:
  langext date 12
  langext date 8.5
  langext date 6-15-84
  langext date --reference 1985-12-03 12`,
	RunE: runDate,
}

var timeCmd = &cobra.Command{
	Use:   "time [text]",
	Short: "Uhrzeit aus freiem Text lesen",
	Long: `Liest Stunde, Minute, Sekunde und Millisekunde aus freiem Text.
"pm" addiert 12 Stunden.

Beispiele:
  langext time 10:30
  langext time 1pm
  langext time "14 32 14.587"
  langext time --utc-offset -05:00 9am`,
	RunE: runTime,
}

var numbersCmd = &cobra.Command{
	Use:   "numbers [text]",
	Short: "Zahlen aus Text extrahieren",
	Long: `Gibt alle Ziffernfolgen des Textes als Zahlen aus.

Beispiele:
  langext numbers "10-12,14 18"
  echo "Version 3.14" | langext numbers`,
	RunE: runNumbers,
}

func init() {
	rootCmd.AddCommand(dateCmd)
	rootCmd.AddCommand(timeCmd)
	rootCmd.AddCommand(numbersCmd)
}

type dateOutput struct {
	Input     string `json:"input"`
	Valid     bool   `json:"valid"`
	Year      int    `json:"year,omitempty"`
	Month     int    `json:"month,omitempty"`
	Day       int    `json:"day,omitempty"`
	Formatted string `json:"formatted,omitempty"`
	Error     string `json:"error,omitempty"`
}

type timeOutput struct {
	Input       string `json:"input"`
	Valid       bool   `json:"valid"`
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	Second      int    `json:"second"`
	Millisecond int    `json:"millisecond"`
	Formatted   string `json:"formatted,omitempty"`
	Instant     string `json:"instant,omitempty"`
	Offset      string `json:"offset,omitempty"`
	Error       string `json:"error,omitempty"`
}

func runDate(cmd *cobra.Command, args []string) error {
	text, err := getInputText(cmd, args)
	if err != nil {
		return err
	}
	p, err := currentParser()
	if err != nil {
		return err
	}

	res := p.Date(text)
	d, ok := res.Value()

	if jsonOutput() {
		out := dateOutput{Input: text, Valid: ok}
		if ok {
			out.Year, out.Month, out.Day = d.Year, int(d.Month), d.Day
			out.Formatted = parsex.FormatDate(d)
		} else {
			out.Error = res.Err().Error()
		}
		if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
			return err
		}
		return res.Err()
	}

	if !ok {
		return res.Err()
	}
	fmt.Fprintln(cmd.OutOrStdout(), parsex.FormatDate(d))
	if verbose {
		fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(d.Time().Format(time.RFC3339)))
	}
	return nil
}

func runTime(cmd *cobra.Command, args []string) error {
	text, err := getInputText(cmd, args)
	if err != nil {
		return err
	}
	p, err := currentParser()
	if err != nil {
		return err
	}

	res := p.Time(text)
	tod, ok := res.Value()

	if jsonOutput() {
		out := timeOutput{Input: text, Valid: ok}
		if ok {
			out.Hour, out.Minute, out.Second, out.Millisecond = tod.Hour, tod.Minute, tod.Second, tod.Millisecond
			out.Formatted = parsex.FormatTime(tod)
			out.Instant = tod.Instant().Format(time.RFC3339Nano)
			out.Offset = tod.Local().Format("-07:00")
		} else {
			out.Error = res.Err().Error()
		}
		if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
			return err
		}
		return res.Err()
	}

	if !ok {
		return res.Err()
	}
	fmt.Fprintln(cmd.OutOrStdout(), parsex.FormatTime(tod))
	if verbose {
		fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(tod.Instant().Format(time.RFC3339Nano)))
	}
	return nil
}

func runNumbers(cmd *cobra.Command, args []string) error {
	text, err := getInputText(cmd, args)
	if err != nil {
		return err
	}

	tokens := parsex.ExtractNumbers(text)
	if jsonOutput() {
		return writeJSON(cmd.OutOrStdout(), tokens)
	}
	fmt.Fprintln(cmd.OutOrStdout(), tokens)
	return nil
}
