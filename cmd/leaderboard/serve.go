package main

import (
	"fmt"
	"os"

	"github.com/devboost/leaderboard/bootstrap"
	"github.com/devboost/leaderboard/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	hotReload bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the leaderboard API server",
	Long: `Start the leaderboard API server.

The server will:
  - Load configuration from leaderboard.yaml (or --config)
  - Or load configuration from LEADERBOARD_* environment variables
  - Serve dashboard aggregation endpoints under /tokens

Environment variables (for Docker deployments):
  LEADERBOARD_GATEWAY_URL      - LiteLLM gateway URL (required)
  LEADERBOARD_GATEWAY_API_KEY  - Gateway API key
  LEADERBOARD_SERVER_PORT      - Server port (default: 8080)
  LEADERBOARD_CORS_ORIGINS     - Comma-separated allowed origins
  LEADERBOARD_LOG_LEVEL        - Log level: debug, info, warn, error

Examples:
  leaderboard serve
  leaderboard serve --config /etc/leaderboard/config.yaml
  leaderboard serve --hot-reload=false

  # Docker (env vars only):
  LEADERBOARD_GATEWAY_URL=http://litellm:4000 leaderboard serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&hotReload, "hot-reload", true, "enable hot reload of configuration")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Local development convenience; a missing .env is fine
	_ = godotenv.Load()

	hasConfigFile := false
	if _, err := os.Stat(cfgFile); err == nil {
		hasConfigFile = true
	}

	hasEnvConfig := config.HasEnvConfig()

	if !hasConfigFile && !hasEnvConfig {
		fmt.Println("No configuration found.")
		fmt.Println()
		fmt.Printf("Option 1: Create %s with a gateway section\n", cfgFile)
		fmt.Println("Option 2: Set LEADERBOARD_GATEWAY_URL environment variable")
		fmt.Println()
		fmt.Println("Example (env vars):")
		fmt.Println("  LEADERBOARD_GATEWAY_URL=http://litellm:4000 leaderboard serve")
		return nil
	}

	var app *bootstrap.App
	var err error

	if hasConfigFile && hotReload {
		// Hot reload only works with a config file
		app, err = bootstrap.NewWithHotReload(cfgFile)
	} else {
		cfg, loadErr := config.LoadWithFallback(cfgFile)
		if loadErr != nil {
			return fmt.Errorf("error loading config: %w", loadErr)
		}

		if !hasConfigFile {
			fmt.Println("Running with environment variables (no config file)")
		}

		app, err = bootstrap.New(cfg)
	}

	if err != nil {
		return fmt.Errorf("error initializing: %w", err)
	}

	// Run (blocks until shutdown)
	return app.Run()
}
