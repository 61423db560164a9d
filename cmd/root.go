package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/logging"
	"github.com/gopak/minigrep/internal/search"
	"github.com/gopak/minigrep/internal/ui/console"
	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	verbose     bool
	ignoreCase  bool
	interactive bool
	highlight   bool
	format      string

	// caseSensitive is decided by the entry point from the environment.
	caseSensitive = true
)

// errArgs marks failures to make sense of the command line.
var errArgs = errors.New("invalid arguments")

var rootCmd = &cobra.Command{
	Use:   "minigrep [flags] <query> <filename>",
	Short: "Print the lines of a file that contain a query",
	Long: `Print every line of <filename> containing <query>, prefixed with its line number.

Matching is case sensitive unless CASE_INSENSITIVE is set or --ignore-case is given.
Use "--" before the query to search for a word that is also a subcommand name.`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE:              runSearch,
}

// Execute runs the command line. caseSensitiveDefault is the matching mode
// picked by the caller before any flag is applied.
func Execute(caseSensitiveDefault bool) error {
	caseSensitive = caseSensitiveDefault
	err := rootCmd.Execute()
	if err != nil {
		logging.Error(diagnostic(err))
	}
	logging.Close()
	return err
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) { rootCmd.Version = v }

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (.yaml, .yml or .toml) to use instead of the files in ~/.config/minigrep; \"config init\" writes it")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show detailed steps")
	rootCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "match case-insensitively (same as setting CASE_INSENSITIVE)")
	rootCmd.Flags().StringVar(&format, "format", "", "output format: plain, table or json (default from settings)")
	rootCmd.Flags().BoolVar(&highlight, "highlight", false, "highlight the query inside matching lines")
	rootCmd.Flags().BoolVar(&interactive, "interactive", false, "prompt for a missing query or filename")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errArgs, err)
	})
	rootCmd.Version = "dev"
}

// settingsDir is the directory searched for settings files when --config
// is not given.
func settingsDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "minigrep"), nil
}

func loadSettings(cmd *cobra.Command, args []string) error {
	logging.SetVerbose(verbose)
	files := []string{cfgFile}
	if cfgFile == "" {
		dir, err := settingsDir()
		if err != nil {
			logging.Debug("settings: " + err.Error() + ", using defaults")
			files = nil
		} else if files, err = config.FilesInDir(dir); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	cfg, err := config.LoadFromFiles(files)
	if err == nil {
		err = config.ValidateAgainstSchema(cfg)
	}
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := logging.Init(cfg.Log); err != nil {
		logging.Error("log file: " + err.Error())
	}
	logging.Debug(fmt.Sprintf("settings loaded from %d file(s)", len(files)))
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	if interactive {
		var err error
		if args, err = console.PromptArgs(args); err != nil {
			return err
		}
	}
	cfg, err := search.NewConfig(append([]string{cmd.Root().Name()}, args...), caseSensitive && !ignoreCase)
	if err != nil {
		return err
	}
	settings := config.Get()
	opts := console.Options{
		Format:        settings.Output.Format,
		Highlight:     highlight || settings.Output.HighlightEnabled(),
		Query:         cfg.Query,
		CaseSensitive: cfg.CaseSensitive,
	}
	if format != "" {
		opts.Format = format
	}
	r, err := console.NewReporter(cmd.OutOrStdout(), opts)
	if err != nil {
		return fmt.Errorf("%w: %v", errArgs, err)
	}
	logging.Debug(fmt.Sprintf("searching %s for %q (case sensitive: %t)", cfg.Filename, cfg.Query, cfg.CaseSensitive))
	return search.Run(cfg, r)
}

// diagnostic renders err as the one-line message printed before exiting.
func diagnostic(err error) string {
	if errors.Is(err, search.ErrNotEnoughParameters) || errors.Is(err, errArgs) {
		return "Problem while parsing arguments: " + err.Error()
	}
	return "Application error: " + err.Error()
}
