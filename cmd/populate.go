package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dverduzco/ecompop/internal/config"
	"github.com/dverduzco/ecompop/internal/db"
	"github.com/dverduzco/ecompop/internal/populate"
	"github.com/dverduzco/ecompop/internal/tier"
)

func init() {
	rootCmd.AddCommand(
		tierCommand("light", "Small dataset loaded with per-entity row batches", tier.Light),
		tierCommand("moderate", "Medium dataset loaded with chunked commits", tier.Moderate),
		tierCommand("massive", "Large dataset streamed through the bulk-copy channel", tier.Massive),
	)
}

func tierCommand(name, short string, plan func() tier.Plan) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			conn, err := db.Connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer conn.Close(cmd.Context())
			return populate.Run(cmd.Context(), conn, cfg, plan())
		},
	}
}
