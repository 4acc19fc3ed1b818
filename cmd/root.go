package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/splashctl/splashctl/config"
	"github.com/splashctl/splashctl/unsplash"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *unsplash.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "splashctl",
	Short: "A CLI for browsing Unsplash photos",
	Long: `splashctl is a CLI tool for the Unsplash API: fetch random photos,
browse the photo listing with expression filters, and inspect or update
the authenticated user's profile.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build metadata shown by --version.
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
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
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Unsplash client
	var opts []unsplash.Option
	if cfg.Unsplash.APIURL != "" {
		opts = append(opts, unsplash.WithAPIURL(cfg.Unsplash.APIURL))
	}
	if cfg.Unsplash.BearerToken != "" {
		opts = append(opts, unsplash.WithBearerToken(cfg.Unsplash.BearerToken))
	}
	if cfg.Unsplash.TimeoutSeconds > 0 {
		opts = append(opts, unsplash.WithTimeout(time.Duration(cfg.Unsplash.TimeoutSeconds)*time.Second))
	}

	client, err = unsplash.NewClient(cfg.Unsplash.AccessKey, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Unsplash client: %w", err)
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
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection to the Unsplash API",
	Long:  `Test that the configured access key can reach the Unsplash API.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Println("Testing connection to the Unsplash API...")

	ctx := context.Background()
	photos, err := client.ListPhotos().PerPage(1).Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to reach the Unsplash API: %w", err)
	}

	fmt.Println("✓ Connection successful!")
	if len(photos) > 0 {
		fmt.Printf("- Latest photo: %s by %s\n", photos[0].ID, photos[0].User.Name)
	}

	// Test the bearer token if configured
	if cfg.Unsplash.BearerToken != "" {
		user, err := client.CurrentUser(ctx)
		if err != nil {
			return fmt.Errorf("access key works but the bearer token does not: %w", err)
		}
		fmt.Printf("✓ Authenticated as %s\n", user.Username)
	} else {
		fmt.Println("\nBearer token: not configured (user endpoints disabled)")
	}

	return nil
}
