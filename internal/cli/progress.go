package cli

import (
	"context"
	"flag"
	"fmt"
	"math"

	"caltrack/internal/api"
	"caltrack/internal/nutrition"
)

func (c *CLI) runProgress(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("progress", flag.ContinueOnError)
	days := fs.Int("days", 30, "trend window in days")
	if err := fs.Parse(args); err != nil {
		return err
	}

	weights, err := c.App.Weights(ctx)
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to load weight entries"))
	}
	if len(weights) == 0 {
		fmt.Fprintln(c.Out, "No weight entries yet. Add one with `caltrack weight add -kg <value>`.")
		return nil
	}

	// Entries arrive newest first.
	latest := weights[0]
	fmt.Fprintf(c.Out, "Progress\n\n  Current: %.1f kg (%s)\n", latest.Weight, latest.Date)

	if len(weights) > 1 {
		mag, label := nutrition.Delta(latest.Weight, weights[1].Weight)
		if label != "" {
			fmt.Fprintf(c.Out, "  Since last entry: %.1f kg %s\n", mag, label)
		}
	}

	if u := c.App.Session.User(); u != nil && u.GoalWeight != nil {
		fmt.Fprintf(c.Out, "  Goal: %.1f kg (%.1f kg to go)\n", *u.GoalWeight, math.Abs(latest.Weight-*u.GoalWeight))
	}

	trend, err := c.App.WeightTrend(ctx, *days)
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to load weight trend"))
	}
	if trend.Direction != "none" {
		fmt.Fprintf(c.Out, "  Last %d days: %.1f kg %s\n", *days, math.Abs(trend.Change), trend.Direction)
	} else {
		fmt.Fprintf(c.Out, "  Last %d days: no change\n", *days)
	}

	fmt.Fprintln(c.Out, "\n  History:")
	for i, e := range weights {
		if i >= 5 {
			break
		}
		fmt.Fprintf(c.Out, "    %-10s %s  %.1f kg", shortID(e.ID), e.Date, e.Weight)
		if e.Notes != "" {
			fmt.Fprintf(c.Out, "  (%s)", e.Notes)
		}
		fmt.Fprintln(c.Out)
	}
	return nil
}

func (c *CLI) runWeight(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("weight requires a subcommand: add, rm")
	}
	switch sub, rest := args[0], args[1:]; sub {
	case "add":
		return c.weightAdd(ctx, rest)
	case "rm":
		return c.weightRemove(ctx, rest)
	default:
		return fmt.Errorf("unknown weight subcommand %q", sub)
	}
}

func (c *CLI) weightAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("weight add", flag.ContinueOnError)
	kg := fs.Float64("kg", 0, "weight in kilograms")
	date := fs.String("date", today(), "entry date")
	notes := fs.String("notes", "", "optional notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *kg <= 0 {
		return fmt.Errorf("weight add requires -kg")
	}

	e, err := c.App.CreateWeight(ctx, api.CreateWeightInput{Weight: *kg, Date: *date, Notes: *notes})
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to add weight entry"))
	}
	fmt.Fprintf(c.Out, "Recorded %.1f kg on %s.\n", e.Weight, e.Date)
	return nil
}

func (c *CLI) weightRemove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("weight rm requires an entry id")
	}
	id := args[0]

	weights, err := c.App.Weights(ctx)
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to load weight entries"))
	}
	for _, e := range weights {
		if e.ID == id || shortID(e.ID) == id {
			if err := c.App.DeleteWeight(ctx, e.ID); err != nil {
				return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to delete weight entry"))
			}
			fmt.Fprintf(c.Out, "Removed entry from %s.\n", e.Date)
			return nil
		}
	}
	return fmt.Errorf("no weight entry %q", id)
}
