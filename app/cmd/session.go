package main

import (
	"fmt"

	"github.com/ribgsilva/mindful-notes/app/cmd/client"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
	registerName  string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in, any password is accepted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.Open(cmd.Context(), log, cmd.OutOrStdout(), false)
		if err != nil {
			return err
		}
		defer app.Close()

		_, err = app.Session.Login(cmd.Context(), loginEmail, loginPassword)
		return err
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.Open(cmd.Context(), log, cmd.OutOrStdout(), false)
		if err != nil {
			return err
		}
		defer app.Close()

		_, err = app.Session.Register(cmd.Context(), registerName, loginEmail, loginPassword)
		return err
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the logged in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.Open(cmd.Context(), log, cmd.OutOrStdout(), false)
		if err != nil {
			return err
		}
		defer app.Close()

		return app.Session.Logout(cmd.Context())
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the logged in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.Open(cmd.Context(), log, cmd.OutOrStdout(), false)
		if err != nil {
			return err
		}
		defer app.Close()

		id, ok := app.Session.Current()
		if !ok {
			return fmt.Errorf("not logged in")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (%s)\n", id.Name, id.Email, id.ID)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringVarP(&loginEmail, "email", "e", "", "Email of the account")
		c.Flags().StringVarP(&loginPassword, "password", "p", "", "Password of the account")
		_ = c.MarkFlagRequired("email")
	}
	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "Display name")
	_ = registerCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
