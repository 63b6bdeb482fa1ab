package cli

import (
	"player-auction/internal/config"
	"player-auction/utils"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Running it without a subcommand serves the API.
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "player-auction",
		Short: "Player auction API server",
		Long: `player-auction runs a player auction: admins add players and close sales,
buyers place bids for their teams.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.yaml if present)")

	rootCmd.AddCommand(newServeCmd(&configPath))
	rootCmd.AddCommand(newSeedCmd(&configPath))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		utils.Fatal("command failed", map[string]any{"error": err.Error()})
	}
}

// loadConfig reads the configuration and applies the log level
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := utils.SetLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}
