package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"portfolio-backend/internal/composer"
)

type submitOptions struct {
	input composer.Input
	yes   bool
}

var submitFlags submitOptions

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Draft a review from a star rating and publish it",
	Long: `Generate review text from a name, project type and star rating, show
it, and publish it after confirmation.`,
	RunE: runSubmit,
}

var testimonialsLimit int

var testimonialsCmd = &cobra.Command{
	Use:   "testimonials",
	Short: "List the most recent approved reviews",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		items, err := newClient().Testimonials(ctx, testimonialsLimit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, t := range items {
			fmt.Fprintf(out, "%s  %s (%s)\n  %s\n", strings.Repeat("*", max(t.Stars, 0)), t.ClientName, t.ProjectType, t.Review)
		}
		return nil
	},
}

func init() {
	f := submitCmd.Flags()
	f.StringVar(&submitFlags.input.ClientName, "name", "", "Your name")
	f.StringVar(&submitFlags.input.ClientEmail, "email", "", "Your email (optional)")
	f.StringVar(&submitFlags.input.ProjectType, "project", "", "Project type")
	f.IntVar(&submitFlags.input.Rating, "rating", 0, "Star rating from 1 to 5")
	f.StringVar(&submitFlags.input.OptionalComment, "comment", "", "Optional comment")
	f.BoolVarP(&submitFlags.yes, "yes", "y", false, "Publish without asking")

	testimonialsCmd.Flags().IntVar(&testimonialsLimit, "limit", 0, "Number of reviews (server default when 0)")
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	form := composer.NewSubmissionForm(newClient())
	form.SetInput(submitFlags.input)

	text, err := form.Generate(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n\n", text)

	if !submitFlags.yes && !ask(cmd.InOrStdin(), out, "Publish this review?") {
		return composer.ErrCancelled
	}

	created, err := form.Publish(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Thank you! Review %s was received.\n", created.ID)
	return nil
}

// ask reads a yes/no answer; anything but y or yes declines.
func ask(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)
	line, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
