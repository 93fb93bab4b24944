package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"portfolio-backend/internal/composer"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/review"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage orders and reviews",
	Long: `Admin board commands. All of them need a session token from
'reviewctl login'.`,
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show counters, orders and reviews",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		board := newBoard(cmd)
		if err := board.Load(ctx); err != nil {
			return err
		}
		printBoard(cmd.OutOrStdout(), board)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:       "status ORDER_ID STATUS",
	Short:     "Change an order's status",
	Args:      cobra.ExactArgs(2),
	ValidArgs: models.OrderStatuses,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		board := newBoard(cmd)
		if err := board.Load(ctx); err != nil {
			return err
		}
		if err := board.SetStatus(ctx, id, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Order %s is now %s\n", id, args[1])
		return nil
	},
}

var notesCmd = &cobra.Command{
	Use:   "notes ORDER_ID TEXT",
	Short: "Replace an order's admin notes; empty text clears them",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		board := newBoard(cmd)
		if err := board.Load(ctx); err != nil {
			return err
		}
		if err := board.BeginNotes(id); err != nil {
			return err
		}
		board.EditNotes(args[1])
		if err := board.SaveNotes(ctx); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Notes saved for order %s\n", id)
		return nil
	},
}

var deleteOrderCmd = &cobra.Command{
	Use:   "delete-order ORDER_ID",
	Short: "Delete an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := newBoard(cmd).DeleteOrder(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Order %s deleted\n", id)
		return nil
	},
}

var deleteReviewCmd = &cobra.Command{
	Use:   "delete-review REVIEW_ID",
	Short: "Delete a review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := newBoard(cmd).DeleteReview(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Review %s deleted\n", id)
		return nil
	},
}

func moderateCmd(use, short, status string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " REVIEW_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := newBoard(cmd).Moderate(ctx, id, status); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Review %s is now %s\n", id, status)
			return nil
		},
	}
}

var assumeYes bool

func init() {
	adminCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Skip delete confirmations")

	adminCmd.AddCommand(dashboardCmd)
	adminCmd.AddCommand(statusCmd)
	adminCmd.AddCommand(notesCmd)
	adminCmd.AddCommand(deleteOrderCmd)
	adminCmd.AddCommand(deleteReviewCmd)
	adminCmd.AddCommand(moderateCmd("approve", "Show a review in the testimonials", models.ReviewStatusApproved))
	adminCmd.AddCommand(moderateCmd("hide", "Take a review out of the testimonials", models.ReviewStatusPending))
}

func newBoard(cmd *cobra.Command) *composer.AdminBoard {
	confirm := func(prompt string) bool {
		return assumeYes || ask(cmd.InOrStdin(), cmd.ErrOrStderr(), prompt)
	}
	return composer.NewAdminBoard(newClient(), confirm)
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	return id, nil
}

func printBoard(out io.Writer, board *composer.AdminBoard) {
	stats := board.Stats()
	fmt.Fprintf(out, "Orders: %d total, %d pending, %d in progress, %d completed\n",
		stats.TotalOrders, stats.PendingOrders, stats.InProgressOrders, stats.CompletedOrders)
	fmt.Fprintf(out, "Reviews: %d\n\n", stats.TotalReviews)

	ordersErr, reviewsErr := board.SectionErrors()

	fmt.Fprintln(out, "ORDERS")
	if ordersErr != "" {
		fmt.Fprintf(out, "  %s\n", ordersErr)
	}
	for _, o := range board.Orders() {
		fmt.Fprintf(out, "  %s  %-13s %s (%s) %s, %s\n", o.ID, o.Status, o.FullName, o.BusinessName, o.GoalText(), o.CreatedAt.Format("2006-01-02"))
		if o.AdminNotes != nil && *o.AdminNotes != "" {
			fmt.Fprintf(out, "      notes: %s\n", *o.AdminNotes)
		}
	}

	fmt.Fprintln(out, "\nREVIEWS")
	if reviewsErr != "" {
		fmt.Fprintf(out, "  %s\n", reviewsErr)
	}
	for _, r := range board.Reviews() {
		stars := strings.Repeat("*", review.Stars(r))
		fmt.Fprintf(out, "  %s  %-8s %-5s %s, %s\n", r.ID, r.Status, stars, r.ClientName, r.ProjectType)
	}
}
