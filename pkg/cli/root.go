package cli

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/getidgen/idgen/pkg/cliconfig"
	"github.com/getidgen/idgen/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	num       int
	logLevel  string
	logFormat string

	// logger is rebuilt from the persistent flags before every run.
	logger = logging.Nop()

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// defaults holds the effective flag defaults: built-in values overlaid by
// the global config file and IDGEN_* environment variables. A broken
// config file falls back to the built-in defaults; the flag layer has no
// way to report it this early, so it is surfaced by `idgen config`.
var defaults = loadDefaults()

func loadDefaults() *cliconfig.Config {
	cfg, err := cliconfig.Load()
	if err != nil {
		return cliconfig.NewDefault()
	}
	return cfg
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "idgen",
	Short: "idgen generates unique identifiers",
	Long: `idgen generates unique identifiers in several formats: UUID (versions
1, 3, 4, 5, 6, 7, and 8), ULID, and MongoDB-style ObjectId.

Each identifier is printed in its canonical text encoding, one per line.
Use -n to generate a batch.

Defaults can be provided via IDGEN_* environment variables or a
configuration file at ~/.config/idgen/config.yaml.`,
	// No Run function here means 'idgen' with no args will print help text by default.
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if num < 1 {
			return fmt.Errorf("--num must be at least 1, got %d", num)
		}
		logger = logging.New(logging.Config{
			Level:  logging.ParseLevel(logLevel),
			Format: logging.ParseFormat(logFormat),
			Output: cmd.ErrOrStderr(),
		})
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Define persistent flags that apply globally to all idgen commands
	rootCmd.PersistentFlags().IntVarP(&num, "num", "n", defaults.Num, "Number of identifiers to generate")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", defaults.LogFormat, "Log format (text, json)")
}

// emit runs next count times, buffering one line per identifier, and
// writes the batch only when every identifier succeeded. A failure
// mid-batch discards the partial output.
func emit(cmd *cobra.Command, count int, next func() (string, error)) error {
	var buf bytes.Buffer
	for i := 0; i < count; i++ {
		s, err := next()
		if err != nil {
			logger.Error("generation failed", slog.Int("generated", i), slog.Any("error", err))
			return err
		}
		buf.WriteString(s)
		buf.WriteByte('\n')
	}
	_, err := cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
