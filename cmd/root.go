package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/dexarr/config"
	"github.com/s0up4200/dexarr/filter"
	"github.com/s0up4200/dexarr/pokeapi"
)

var (
	cfgFile       string
	cfg           *config.Config
	logger        zerolog.Logger
	client        *pokeapi.Client
	filterManager *filter.Manager

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dexarr",
	Short: "A typed PokeAPI client with an MCP tool server",
	Long: `dexarr fetches Pokemon and Generation resources from the read-only PokeAPI
REST API. It can print single resources, list and filter paginated
collections, or serve the same operations as MCP tools over stdio.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// SetVersion sets the build information reported by version and update
func SetVersion(v, built string) {
	version = v
	buildTime = built
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// initializeApp initializes the configuration, logger and client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging, cmd.ErrOrStderr())

	client, err = newClient(cfg.API, logger)
	if err != nil {
		return fmt.Errorf("failed to create PokeAPI client: %w", err)
	}

	filterManager = filter.NewManager()
	if err := filterManager.RegisterPresets(cfg.Filter.Presets); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	logger.Debug().
		Str("base_url", cfg.API.BaseURL).
		Str("prefix", cfg.API.Prefix).
		Dur("timeout", cfg.API.Timeout).
		Int("presets", len(cfg.Filter.Presets)).
		Msg("Initialized")

	return nil
}

// newClient builds a PokeAPI client from the api config section
func newClient(api config.APIConfig, logger zerolog.Logger) (*pokeapi.Client, error) {
	userAgent := api.UserAgent
	if userAgent == "" {
		userAgent = "dexarr/" + version
	}

	opts := []pokeapi.Option{
		pokeapi.WithBaseURL(api.BaseURL),
		pokeapi.WithAPIPrefix(api.Prefix),
		pokeapi.WithTimeout(api.Timeout),
		pokeapi.WithUserAgent(userAgent),
	}
	for k, v := range api.Headers {
		opts = append(opts, pokeapi.WithHeader(k, v))
	}

	return pokeapi.NewClient(logger, opts...)
}

// setupLogger configures the zerolog logger. Logs always go to stderr so
// stdout stays clean for command output and the MCP protocol.
func setupLogger(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// isTerminal reports whether out is an interactive terminal
func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
