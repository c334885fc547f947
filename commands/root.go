package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bobmatnyc/memory-client-go/api"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

var (
	flagURL      string
	flagToken    string
	flagTimeout  time.Duration
	flagInsecure bool
	envPath      string
	plainOutput  bool
	verbose      bool
)

// The base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "memctl",
	Short: "A command line client for the MCP memory service",
	Long: `memctl talks to a deployed MCP memory service over its REST API.
It stores and searches memories, manages entities and users, and can browse
stored records interactively.

Connection settings come from the MEMORY_SERVICE_URL and MEMORY_SERVICE_TOKEN
environment variables or an env file, with flags taking precedence.`,
	// Run before any subcommand
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		return loadEnvFile()
	},
	SilenceUsage: true,
}

// loadEnvFile pulls connection settings from the first env file found. Only
// an explicit --env-file that fails to load is an error; the default
// locations are optional.
func loadEnvFile() error {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", envPath, err)
		}
		return nil
	}

	if home, err := homedir.Dir(); err == nil {
		if godotenv.Load(filepath.Join(home, ".memctl.env")) == nil {
			return nil
		}
	}
	godotenv.Load()
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// SIGINT and SIGTERM cancel the command context, aborting in-flight requests.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "Memory service base URL (default: MEMORY_SERVICE_URL)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Bearer token (default: MEMORY_SERVICE_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "Request timeout, e.g. 10s (default 30s)")
	rootCmd.PersistentFlags().BoolVar(&flagInsecure, "insecure", false, "Skip TLS certificate verification")
	rootCmd.PersistentFlags().StringVar(&envPath, "env-file", "", "Path to an env file (default: ~/.memctl.env, then ./.env)")
	rootCmd.PersistentFlags().BoolVar(&plainOutput, "plain", false, "Print raw JSON instead of tables")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(NewMemoryCmd())
	rootCmd.AddCommand(NewEntityCmd())
	rootCmd.AddCommand(NewSearchCmd())
	rootCmd.AddCommand(NewUserCmd())
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)

	return rootCmd
}

// newClient builds a client from the environment with flag overrides on top.
func newClient() (*api.Client, error) {
	cfg := api.ConfigFromEnv()
	if flagURL != "" {
		cfg.BaseURL = flagURL
	}
	if flagToken != "" {
		cfg.AuthToken = flagToken
	}
	if flagTimeout > 0 {
		cfg.Timeout = flagTimeout
	}
	if flagInsecure {
		cfg.SkipTLSVerify = true
	}
	return api.NewClient(cfg)
}
