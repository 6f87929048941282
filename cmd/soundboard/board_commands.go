package main

import (
	"strings"

	"github.com/spf13/cobra"

	"soundboard/internal/ipc"
)

type boardCall func(*ipc.Client) (*ipc.BoardResponse, error)

// boardCommand runs call against the daemon and prints the resulting board.
func boardCommand(ctx *commandContext, use, short string, args cobra.PositionalArgs, call func([]string) boardCall) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, argv []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := call(argv)(client)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp.View)
				}
				renderBoard(cmd.OutOrStdout(), resp.View)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the board as JSON")
	return cmd
}

func newBoardCommands(ctx *commandContext) []*cobra.Command {
	list := boardCommand(ctx, "list", "Show the board as currently filtered", cobra.NoArgs,
		func([]string) boardCall { return (*ipc.Client).Board })
	list.Aliases = []string{"ls", "board"}

	search := boardCommand(ctx, "search <query>", "Filter sounds by label", cobra.ArbitraryArgs,
		func(args []string) boardCall {
			query := strings.Join(args, " ")
			return func(c *ipc.Client) (*ipc.BoardResponse, error) { return c.SetQuery(query) }
		})

	category := boardCommand(ctx, "category <name>", "Show one category (\"all\" for everything)", cobra.ExactArgs(1),
		func(args []string) boardCall {
			return func(c *ipc.Client) (*ipc.BoardResponse, error) { return c.SelectCategory(args[0]) }
		})

	justAdded := boardCommand(ctx, "just-added", "Show every sound, newest first", cobra.NoArgs,
		func([]string) boardCall { return (*ipc.Client).JustAdded })

	clearCmd := boardCommand(ctx, "clear", "Clear the search and category filter", cobra.NoArgs,
		func([]string) boardCall { return (*ipc.Client).Clear })

	home := boardCommand(ctx, "home", "Return to the initial board", cobra.NoArgs,
		func([]string) boardCall { return (*ipc.Client).Home })

	return []*cobra.Command{list, search, category, justAdded, clearCmd, home}
}
