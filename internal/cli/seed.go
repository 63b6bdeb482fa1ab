package cli

import (
	"errors"

	"player-auction/internal/config"
	"player-auction/utils"

	"github.com/spf13/cobra"
)

func newSeedCmd(configPath *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Register admin and buyer accounts from a YAML file",
		Long: `Registers every account listed in the file. Usernames that already exist are
skipped, so the command can be run more than once.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if file == "" {
				file = cfg.Seed.AccountsFile
			}
			if file == "" {
				return errors.New("seed: no accounts file, pass --file or set seed.accounts_file")
			}

			if cfg.Storage.Type == config.StorageMemory {
				utils.Warn("seeding in-memory storage, accounts are lost when the command exits", nil)
			}

			app, err := NewApp(cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			res, err := app.Auth.SeedFromFile(cmd.Context(), file)
			if err != nil {
				return err
			}
			cmd.Printf("admins created: %d, buyers created: %d, skipped: %d\n",
				res.AdminsCreated, res.BuyersCreated, res.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file listing admins and buyers")

	return cmd
}
