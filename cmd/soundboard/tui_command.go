package main

import (
	"github.com/spf13/cobra"

	"soundboard/internal/ipc"
	"soundboard/internal/tui"
)

func newTUICommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				return tui.Run(client)
			})
		},
	}
}
