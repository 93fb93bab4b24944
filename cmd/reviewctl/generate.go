package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"portfolio-backend/internal/composer"
	"portfolio-backend/internal/review"
)

type generateOptions struct {
	fields review.Fields
	copy   bool
}

var generateFlags generateOptions

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate review text from explicit selections",
	Long: `Generate a client review from the five selections of the review widget.
Nothing is stored. Use --copy to put the text on the clipboard.`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateFlags.fields.OverallExperience, "experience", "", fmt.Sprintf("Overall experience %v", review.ExperienceOptions))
	f.StringVar(&generateFlags.fields.ProjectType, "project", "", fmt.Sprintf("Project type %v", review.ProjectTypeOptions))
	f.StringVar(&generateFlags.fields.Delivery, "delivery", "", fmt.Sprintf("Delivery %v", review.DeliveryOptions))
	f.StringVar(&generateFlags.fields.Communication, "communication", "", fmt.Sprintf("Communication %v", review.CommunicationOptions))
	f.StringVar(&generateFlags.fields.WouldRecommend, "recommend", "", fmt.Sprintf("Would recommend %v", review.RecommendOptions))
	f.StringVar(&generateFlags.fields.OptionalComment, "comment", "", "Optional free-text comment")
	f.BoolVar(&generateFlags.copy, "copy", false, "Copy the generated review to the clipboard")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	widget := composer.NewGeneratorWidget(newClient(), composer.SystemClipboard{}, composer.WithCopiedFor(time.Second))
	widget.Select(generateFlags.fields)

	text, err := widget.Generate(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)

	if generateFlags.copy {
		if err := widget.Copy(); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied!")
	}
	return nil
}
