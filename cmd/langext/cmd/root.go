package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/langext/core/config"
	mdwerror "github.com/msto63/langext/core/error"
	"github.com/msto63/langext/core/log"
	"github.com/msto63/langext/core/registry"
	"github.com/msto63/langext/internal/modules"
	"github.com/msto63/langext/utils/parsex"
	"github.com/msto63/langext/utils/slicex"
	"github.com/msto63/langext/utils/stringx"
)

var (
	cfgFile      string
	verbose      bool
	reference    string
	utcOffset    string
	outputFormat string
)

// runtime state, prepared before every command
var (
	settings config.Settings
	logger   *log.Logger
	reg      *registry.Registry
)

var rootCmd = &cobra.Command{
	Use:   "langext",
	Short: "langext - Sprach-Erweiterungen für Datum, Zeit und Text",
	Long: `langext bündelt kleine Hilfsfunktionen rund um Text:

  date      - Datum aus freiem Text (z.B. "6-15-84", "8.5", "12")
  time      - Uhrzeit aus freiem Text (z.B. "1pm", "14 32 14.587")
  numbers   - Zahlen aus Text extrahieren
  fancify   - Typografische Anführungszeichen und Striche
  in        - Wert in Liste prüfen
  steps     - Parse-Schritte mit dem Step-Timer messen
  modules   - Registrierte Module anzeigen
  tui       - Interaktive Ansicht`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepareRuntime,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./langext.toml oder ~/.config/langext/)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVar(&reference, "reference", "", "Referenzdatum statt heute (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&utcOffset, "utc-offset", "", "UTC-Offset für Zeiten (z.B. +02:00)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Ausgabeformat (text|json)")
}

func prepareRuntime(cmd *cobra.Command, args []string) error {
	if !stringx.In(outputFormat, "text", "json") {
		return mdwerror.New(fmt.Sprintf("unbekanntes Ausgabeformat: %s", outputFormat)).
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("output", outputFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	settings, err = config.Bind(cfg)
	if err != nil {
		return err
	}

	// Flags win over the config file and the environment.
	var overridden []string
	if reference != "" {
		settings.Parser.Reference = reference
		if cfg.Has("parser.reference") {
			overridden = append(overridden, "parser.reference")
		}
	}
	if utcOffset != "" {
		settings.Parser.UTCOffset = utcOffset
		if cfg.Has("parser.utc_offset") {
			overridden = append(overridden, "parser.utc_offset")
		}
	}
	if err := config.Validate(settings); err != nil {
		return err
	}

	logger, err = newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	log.SetDefault(logger)
	if len(overridden) > 0 {
		logger.Debug("config values overridden by flags", log.Fields{
			"keys": strings.Join(overridden, ","),
		})
	}

	reg, err = modules.Bootstrap(modules.Options{Settings: settings, Logger: logger})
	if err != nil {
		return err
	}

	logger.Debug("runtime prepared", log.Fields{
		"config":  cfg.FilePath(),
		"format":  cfg.Format().String(),
		"command": cmd.Name(),
	})
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: config.EnvPrefix,
		})
	}
	return config.Discover(config.DefaultDiscoveryOptions())
}

func newLogger(out io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(settings.Log.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = log.LevelDebug
	}
	format, err := log.ParseFormat(settings.Log.Format)
	if err != nil {
		return nil, err
	}

	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: out,
		Name:   "langext",
	}), nil
}

func currentParser() (*parsex.Parser, error) {
	p, ok := modules.Parser(reg)
	if !ok {
		return nil, mdwerror.New("parsers module not available").
			WithCode(mdwerror.CodeNotFound)
	}
	return p, nil
}

// getInputText prefers arguments and falls back to piped stdin
func getInputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return readPiped(cmd)
}

// getInputLines returns args, or the non-blank lines of piped stdin
func getInputLines(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	text, err := readPiped(cmd)
	if err != nil {
		return nil, err
	}
	return slicex.Filter(stringx.SplitLines(text), stringx.IsNotBlank), nil
}

func readPiped(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return "", nil
		}
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func jsonOutput() bool {
	return outputFormat == "json"
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("Fehler: %v", err)))
}
