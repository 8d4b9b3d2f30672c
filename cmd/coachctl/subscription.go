package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	subscriptionrepo "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres/subscription"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

var (
	subEmail     string
	subStatus    string
	subTrialEnds string
	subPeriodEnd string
)

var subscriptionCmd = &cobra.Command{
	Use:   "subscription",
	Short: "Inspect or override billing state",
}

// subscriptionSetCmd writes billing state the way the payment webhook sync
// would. Sessions pick it up on their next refresh.
var subscriptionSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a user's subscription status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sub, err := buildSubscription(subEmail, subStatus, subTrialEnds, subPeriodEnd)
		if err != nil {
			return err
		}

		ctx, pool, done, err := connect(cmd)
		if err != nil {
			return err
		}
		defer done()

		saved, err := subscriptionrepo.New(pool).Upsert(ctx, sub)
		if err != nil {
			return fmt.Errorf("upsert subscription: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Subscription for %q is now %s.\n", saved.Email, saved.Status)
		return nil
	},
}

var subscriptionGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a user's subscription",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		email := domain.NormalizeEmail(subEmail)
		if email.IsZero() {
			return fmt.Errorf("--email is required")
		}

		ctx, pool, done, err := connect(cmd)
		if err != nil {
			return err
		}
		defer done()

		sub, err := subscriptionrepo.New(pool).GetByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("get subscription: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "email:      %s\n", sub.Email)
		fmt.Fprintf(out, "status:     %s\n", sub.Status)
		fmt.Fprintf(out, "trial ends: %s\n", formatOptionalTime(sub.TrialEndsAt))
		fmt.Fprintf(out, "period end: %s\n", formatOptionalTime(sub.CurrentPeriodEnd))
		return nil
	},
}

// buildSubscription validates flag values. Unlike stored rows, an unknown
// status is an error here rather than silently FREE.
func buildSubscription(email, status, trialEnds, periodEnd string) (domain.Subscription, error) {
	id := domain.NormalizeEmail(email)
	if id.IsZero() {
		return domain.Subscription{}, fmt.Errorf("--email is required")
	}
	st := domain.SubscriptionStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !st.IsValid() {
		return domain.Subscription{}, fmt.Errorf("invalid --status %q", status)
	}

	sub := domain.Subscription{Email: id, Status: st}
	var err error
	if sub.TrialEndsAt, err = parseOptionalTime("--trial-ends", trialEnds); err != nil {
		return domain.Subscription{}, err
	}
	if sub.CurrentPeriodEnd, err = parseOptionalTime("--period-end", periodEnd); err != nil {
		return domain.Subscription{}, err
	}
	return sub, nil
}

func parseOptionalTime(flag, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be RFC 3339: %w", flag, err)
	}
	t = t.UTC()
	return &t, nil
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC3339)
}

func init() {
	subscriptionSetCmd.Flags().StringVar(&subEmail, "email", "", "user email")
	subscriptionSetCmd.Flags().StringVar(&subStatus, "status", "", "FREE, TRIAL, ACTIVE, PAST_DUE or CANCELED")
	subscriptionSetCmd.Flags().StringVar(&subTrialEnds, "trial-ends", "", "trial end (RFC 3339)")
	subscriptionSetCmd.Flags().StringVar(&subPeriodEnd, "period-end", "", "current period end (RFC 3339)")
	_ = subscriptionSetCmd.MarkFlagRequired("email")
	_ = subscriptionSetCmd.MarkFlagRequired("status")

	subscriptionGetCmd.Flags().StringVar(&subEmail, "email", "", "user email")

	subscriptionCmd.AddCommand(subscriptionSetCmd, subscriptionGetCmd)
	rootCmd.AddCommand(subscriptionCmd)
}
