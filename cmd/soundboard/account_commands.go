package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"soundboard/internal/ipc"
)

func newAccountCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newLoginCommand(ctx, "login", "Log in to the board", false),
		newLoginCommand(ctx, "signup", "Create an account on the board", true),
		newInstallCommand(ctx),
	}
}

func newLoginCommand(ctx *commandContext, use, short string, signUp bool) *cobra.Command {
	var email string
	var password string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Login(ipc.LoginRequest{Email: email, Password: password, SignUp: signUp})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), resp.Notice)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	return cmd
}

func newInstallCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Show how to install the board as an app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Install()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, resp.Message)
				if resp.URL != "" {
					fmt.Fprintf(out, "Board URL: %s\n", resp.URL)
				}
				return nil
			})
		},
	}
}
