// Command reviewctl drives the reviews API from a terminal: the generator
// widget, the review form and the admin board.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"portfolio-backend/internal/client"
)

var (
	apiURL  string
	token   string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "reviewctl",
	Short:         "Generate, submit and moderate portfolio reviews",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("REVIEWCTL_API", "http://localhost:8080"), "API base URL (or set REVIEWCTL_API)")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("REVIEWCTL_TOKEN"), "Admin access token (or set REVIEWCTL_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 90*time.Second, "Request timeout")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(testimonialsCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(adminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			fmt.Fprintln(os.Stderr, "Your session has expired, please log in again (reviewctl login).")
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newClient() *client.Client {
	c := client.New(apiURL)
	if token != "" {
		c.SetToken(token)
	}
	return c
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}
