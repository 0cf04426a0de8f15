package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/devboost/leaderboard/adapters/litellm"
	"github.com/devboost/leaderboard/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var checkGateway bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration before deployment",
	Long: `Validate the leaderboard configuration.

Checks:
  - YAML syntax is valid
  - Required fields are present
  - Gateway is reachable (with --check-gateway)

Examples:
  leaderboard validate
  leaderboard validate --config /etc/leaderboard/config.yaml
  leaderboard validate --check-gateway`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&checkGateway, "check-gateway", false, "probe the gateway health endpoint")
}

func runValidate(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.LoadWithFallback(cfgFile)
	if err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	fmt.Println("Configuration valid")
	fmt.Printf("  Gateway:      %s\n", cfg.Gateway.URL)
	fmt.Printf("  Listen:       %s:%d\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("  CORS origins: %s\n", strings.Join(cfg.CORS.Origins, ", "))
	fmt.Printf("  Log level:    %s\n", cfg.Logging.Level)

	if checkGateway {
		client, err := litellm.New(litellm.Config{
			BaseURL: cfg.Gateway.URL,
			APIKey:  cfg.Gateway.APIKey,
			Timeout: cfg.Gateway.Timeout,
		}, zerolog.Nop())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := client.HealthCheck(ctx); err != nil {
			return fmt.Errorf("gateway unreachable: %w", err)
		}
		fmt.Println("  Gateway:      reachable")
	}

	return nil
}
