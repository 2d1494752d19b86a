package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/langext/core/error"
	"github.com/msto63/langext/internal/modules"
	"github.com/msto63/langext/utils/slicex"
	"github.com/msto63/langext/utils/stringx"
	"github.com/msto63/langext/utils/timex"
)

var (
	stepsUseSum bool
	stepsFormat string
	stepsLog    bool
)

var stepsCmd = &cobra.Command{
	Use:   "steps <eingabe>...",
	Short: "Misst Parse-Schritte mit dem Step-Timer",
	Long: `Parst jede Eingabe als Datum und Uhrzeit und misst die Dauer
jedes Schritts. Am Ende steht die Gesamtzeit.

Ohne Argumente wird jede Zeile der Standardeingabe ein Schritt.

Beispiele:
  langext steps 6-15-84 1pm "14 32 14.587"
  langext steps --sum --format ss.ffffff 12 8.5
  cat eingaben.txt | langext steps`,
	RunE: runSteps,
}

func init() {
	rootCmd.AddCommand(stepsCmd)

	stepsCmd.Flags().BoolVar(&stepsUseSum, "sum", false, "Gesamtzeit als Summe der Schritte")
	stepsCmd.Flags().StringVar(&stepsFormat, "format", "", "Zeitformat (default aus Config, mm:ss.fff)")
	stepsCmd.Flags().BoolVar(&stepsLog, "log", false, "Schritte zusätzlich loggen (default aus Config, steptimer.log)")
}

type stepOutput struct {
	ID      string `json:"id"`
	Input   string `json:"input"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Elapsed string `json:"elapsed"`
}

func runSteps(cmd *cobra.Command, args []string) error {
	inputs, err := getInputLines(cmd, args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return mdwerror.New("keine Eingaben").
			WithCode(mdwerror.CodeRequiredField).
			WithOperation("steps")
	}

	timer, ok := modules.NewStepTimer(reg)
	if !ok {
		return mdwerror.New("stepTimer module not available").WithCode(mdwerror.CodeNotFound)
	}
	if !stringx.IsBlank(stepsFormat) {
		timer.SetFormat(stepsFormat)
	}
	p, err := currentParser()
	if err != nil {
		return err
	}

	// Steps carry only a message, so the results are collected alongside.
	results := make([][2]string, 0, len(inputs))
	for _, input := range inputs {
		d, dateOK := p.Date(input).Value()
		t, timeOK := p.Time(input).Value()
		results = append(results, [2]string{describe(d, dateOK), describe(t, timeOK)})
		timer.AddStep(input)
	}

	if stepsLog || settings.StepTimer.Log {
		timer.LogSteps(logger)
	}

	if jsonOutput() {
		out := slicex.ZipWith(timer.Steps(), results, func(s timex.Step, r [2]string) stepOutput {
			return stepOutput{
				ID:      s.ID.String(),
				Input:   s.Message,
				Date:    r[0],
				Time:    r[1],
				Elapsed: timer.FormatTime(s.Elapsed),
			}
		})
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"steps": out,
			"total": timer.FormatTime(timer.TotalTime(stepsUseSum)),
		})
	}

	for i, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s | %s\n", labelStyle.Render(inputs[i]), r[0], r[1])
	}
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), timer.String(stepsUseSum))
	return nil
}

func describe[T fmt.Stringer](v T, ok bool) string {
	if !ok {
		return "-"
	}
	return v.String()
}
