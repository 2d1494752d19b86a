package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/langext/core/error"
	"github.com/msto63/langext/core/registry"
	"github.com/msto63/langext/internal/modules"
)

var (
	inIgnoreCase bool
	inNumeric    bool
)

var fancifyCmd = &cobra.Command{
	Use:   "fancify [text]",
	Short: "Typografische Zeichen einsetzen",
	Long: `Ersetzt gerade Anführungszeichen, "...", " - " und "--" durch
typografische Zeichen und entfernt Einrückungen am Zeilenanfang.

Beispiele:
  langext fancify 'He said "wait..." - then left'
  cat text.txt | langext fancify`,
	RunE: runFancify,
}

var inCmd = &cobra.Command{
	Use:   "in <wert> <kandidat>...",
	Short: "Prüft, ob ein Wert in einer Liste vorkommt",
	Long: `Gibt true aus, wenn der Wert einem der Kandidaten entspricht.

Beispiele:
  langext in Hello Hello World
  langext in --ignore-case hello HELLO World
  langext in --numeric 5 5.0 10 15`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIn,
}

func init() {
	rootCmd.AddCommand(fancifyCmd)
	rootCmd.AddCommand(inCmd)

	inCmd.Flags().BoolVarP(&inIgnoreCase, "ignore-case", "i", false, "Groß-/Kleinschreibung ignorieren")
	inCmd.Flags().BoolVarP(&inNumeric, "numeric", "n", false, "Als Zahlen vergleichen")
}

func runFancify(cmd *cobra.Command, args []string) error {
	text, err := getInputText(cmd, args)
	if err != nil {
		return err
	}

	helpers, ok := registry.Get[modules.StringHelpers](reg, modules.Strings)
	if !ok {
		return mdwerror.New("strings module not available").WithCode(mdwerror.CodeNotFound)
	}

	result := helpers.Fancify(text)
	if jsonOutput() {
		return writeJSON(cmd.OutOrStdout(), map[string]string{"input": text, "result": result})
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

func runIn(cmd *cobra.Command, args []string) error {
	value, candidates := args[0], args[1:]

	var found bool
	if inNumeric {
		numbers, ok := registry.Get[modules.NumberHelpers](reg, modules.Numbers)
		if !ok {
			return mdwerror.New("numbers module not available").WithCode(mdwerror.CodeNotFound)
		}
		v, vals, err := parseFloats(value, candidates)
		if err != nil {
			return err
		}
		found = numbers.In(v, vals...)
	} else {
		strs, ok := registry.Get[modules.StringHelpers](reg, modules.Strings)
		if !ok {
			return mdwerror.New("strings module not available").WithCode(mdwerror.CodeNotFound)
		}
		if inIgnoreCase {
			found = strs.InFold(value, candidates...)
		} else {
			found = strs.In(value, candidates...)
		}
	}

	if jsonOutput() {
		return writeJSON(cmd.OutOrStdout(), map[string]any{"value": value, "found": found})
	}
	fmt.Fprintln(cmd.OutOrStdout(), found)
	return nil
}

func parseFloats(value string, candidates []string) (float64, []float64, error) {
	parse := func(s string) (float64, error) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, mdwerror.Wrap(err, fmt.Sprintf("keine Zahl: %s", s)).
				WithCode(mdwerror.CodeInvalidFormat).
				WithDetail("input", s)
		}
		return f, nil
	}

	v, err := parse(value)
	if err != nil {
		return 0, nil, err
	}
	vals := make([]float64, 0, len(candidates))
	for _, c := range candidates {
		f, err := parse(c)
		if err != nil {
			return 0, nil, err
		}
		vals = append(vals, f)
	}
	return v, vals, nil
}
