package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/langext/internal/version"
)

var (
	Version   = version.Langext
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "langext v%s\n", Version)
		fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
		fmt.Fprintf(out, "  Build Date: %s\n", BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)

		if reg == nil {
			return
		}
		fmt.Fprintln(out, "  Module:")
		for _, name := range reg.Order() {
			fmt.Fprintf(out, "    %-10s v%s\n", name, version.ModuleVersion(name))
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
