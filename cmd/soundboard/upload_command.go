package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"soundboard/internal/ipc"
)

func newUploadCommand(ctx *commandContext) *cobra.Command {
	var name string
	var category string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "upload --name <label> --category <tag> [file]",
		Short: "Add a sound to the board",
		Long: "Add a sound to the board. The daemon reads the file directly, so the path " +
			"must be reachable from the daemon host.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := ipc.UploadRequest{Name: name, Category: category}
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				abs, err := filepath.Abs(args[0])
				if err != nil {
					return fmt.Errorf("resolve upload path: %w", err)
				}
				req.Path = abs
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Upload(req)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, resp.Notice)
				fmt.Fprintf(out, "  id: %s\n  category: %s\n  rank: %d\n", resp.Sound.ID, resp.Sound.CategoryLabel, resp.Sound.AddedRank)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Label shown on the button")
	cmd.Flags().StringVar(&category, "category", "", "Category tag (classic, gaming, anime, comedy, music)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output result as JSON")
	return cmd
}
