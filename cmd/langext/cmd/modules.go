package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/langext/internal/version"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Zeigt die registrierten Module",
	Long: `Listet alle Module der Registry mit ihren Abhängigkeiten
in Definitionsreihenfolge.`,
	RunE: runModules,
}

func init() {
	rootCmd.AddCommand(modulesCmd)
}

type moduleOutput struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Dependencies []string `json:"dependencies"`
}

func runModules(cmd *cobra.Command, args []string) error {
	var out []moduleOutput
	for _, name := range reg.Order() {
		deps, err := reg.Dependencies(name)
		if err != nil {
			return err
		}
		out = append(out, moduleOutput{Name: name, Version: version.ModuleVersion(name), Dependencies: deps})
	}

	if jsonOutput() {
		return writeJSON(cmd.OutOrStdout(), out)
	}

	fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("Module"))
	for _, m := range out {
		deps := "-"
		if len(m.Dependencies) > 0 {
			deps = strings.Join(m.Dependencies, ", ")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s v%-8s %s\n", labelStyle.Render(m.Name), m.Version, mutedStyle.Render(deps))
	}
	return nil
}
