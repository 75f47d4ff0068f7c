package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/imgur-go/config"
	"github.com/s0up4200/imgur-go/imgur"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *imgur.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "imgur",
	Short: "A CLI for the Imgur image hosting service",
	Long: `imgur is a CLI tool for interacting with the Imgur API: look up
accounts and albums, fetch, upload, update and delete images, and run the
OAuth pin flow to act on behalf of your account.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(albumCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(authorizeCmd)
}

// initializeApp initializes the configuration and the Imgur client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Imgur client
	client, err = imgur.NewClient(cfg.Imgur.ClientID, cfg.Imgur.ClientSecret, logger,
		imgur.WithMaxUploadDimension(cfg.Upload.MaxDimension))
	if err != nil {
		return fmt.Errorf("failed to create Imgur client: %w", err)
	}

	// Restore a previously obtained token so requests use bearer auth
	if cfg.Imgur.AccessToken != "" {
		client.SetAccessToken(cfg.Imgur.AccessToken)
		logger.Debug().Msg("Using access token from configuration")
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
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
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
