package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/livekit-token-server/internal/app"
	"github.com/vovakirdan/livekit-token-server/internal/token"
)

func newMintCmd(root *rootOptions) *cobra.Command {
	var req token.Request

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Print a token for one room and user without starting the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			tok, err := app.NewIssuer(&cfg).Issue(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("mint token: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}

	cmd.Flags().StringVar(&req.Room, "room", "", "room name")
	cmd.Flags().StringVar(&req.UserID, "identity", "", "participant identity (userId)")
	cmd.Flags().StringVar(&req.Username, "name", "", "participant display name")
	_ = cmd.MarkFlagRequired("room")
	_ = cmd.MarkFlagRequired("identity")
	return cmd
}
