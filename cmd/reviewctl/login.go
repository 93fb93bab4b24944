package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type loginOptions struct {
	email    string
	password string
}

var loginFlags loginOptions

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in as the admin and print an access token",
	Long: `Sign in with the admin email and password. The access token is printed
in a form that can be exported as REVIEWCTL_TOKEN.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		password := loginFlags.password
		if password == "" {
			password = os.Getenv("REVIEWCTL_PASSWORD")
		}
		session, err := newClient().Login(ctx, loginFlags.email, password)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "export REVIEWCTL_TOKEN=%s\n", session.AccessToken)
		fmt.Fprintf(cmd.ErrOrStderr(), "Signed in as %s, token expires in %ds\n", session.Email, session.ExpiresIn)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the admin session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := newClient().Logout(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Signed out")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginFlags.email, "email", "", "Admin email")
	loginCmd.Flags().StringVar(&loginFlags.password, "password", "", "Admin password (or set REVIEWCTL_PASSWORD)")
	_ = loginCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(logoutCmd)
}
