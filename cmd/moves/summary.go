package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/moves/pkg/moves"
)

const dayLayout = "20060102"

type summarySection struct {
	title string
	call  string
	body  []byte
}

func summaryCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show profile, daily summaries and activities for a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sections, err := summarySections(from, to)
			if err != nil {
				return err
			}

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			accessToken, err := a.accessToken(ctx)
			if err != nil {
				return err
			}

			if err := fetchSections(ctx, a.client, accessToken, sections); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range sections {
				printHeading(out, s.title)
				printJSON(out, s.body)
			}
			return nil
		},
	}

	today := time.Now().Format(dayLayout)
	cmd.Flags().StringVar(&from, "from", today, "first day (yyyyMMdd)")
	cmd.Flags().StringVar(&to, "to", today, "last day (yyyyMMdd)")

	return cmd
}

func summarySections(from string, to string) ([]summarySection, error) {
	start, err := time.Parse(dayLayout, from)
	if err != nil {
		return nil, fmt.Errorf("invalid --from %q: want yyyyMMdd", from)
	}
	end, err := time.Parse(dayLayout, to)
	if err != nil {
		return nil, fmt.Errorf("invalid --to %q: want yyyyMMdd", to)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("--to %s is before --from %s", to, from)
	}

	rng := "?from=" + from + "&to=" + to
	return []summarySection{
		{title: "Profile", call: "/user/profile"},
		{title: "Daily summary", call: "/user/summary/daily" + rng},
		{title: "Daily activities", call: "/user/activities/daily" + rng},
	}, nil
}

// fetchSections fills each section's body concurrently. The first failure
// cancels the rest.
func fetchSections(ctx context.Context, client *moves.Client, accessToken string, sections []summarySection) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := range sections {
		s := &sections[i]
		g.Go(func() error {
			resp, err := client.Get(ctx, s.call, accessToken)
			if err != nil {
				return fmt.Errorf("%s: %w", s.title, err)
			}
			if err := resp.Err(); err != nil {
				return fmt.Errorf("%s: %w", s.title, err)
			}
			s.body = resp.Body
			return nil
		})
	}
	return g.Wait()
}
