package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"soundboard/internal/ipc"
	"soundboard/internal/playback"
)

func newPlayCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "play <id>...",
		Short: "Play one or more sounds on the daemon host",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				results := make([]ipc.PlayResponse, 0, len(args))
				for _, id := range args {
					resp, err := client.Play(id)
					if err != nil {
						return err
					}
					results = append(results, *resp)
				}
				if asJSON {
					return writeJSON(cmd, results)
				}
				renderPlayResults(cmd.OutOrStdout(), results)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output results as JSON")
	return cmd
}

func renderPlayResults(out io.Writer, results []ipc.PlayResponse) {
	for _, resp := range results {
		switch playback.Status(resp.Status) {
		case playback.StatusStarted:
			window := time.Duration(resp.WindowMS) * time.Millisecond
			fmt.Fprintf(out, "Playing %s (%s)\n", resp.ID, window)
		case playback.StatusFailed:
			fmt.Fprintf(out, "Failed %s: %s\n", resp.ID, resp.Reason)
		default:
			fmt.Fprintf(out, "Ignored %s: %s\n", resp.ID, resp.Reason)
		}
	}
}
