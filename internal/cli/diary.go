package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"caltrack/internal/api"
	"caltrack/internal/nutrition"
)

func today() string { return time.Now().Format("2006-01-02") }

func (c *CLI) runDiary(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("diary", flag.ContinueOnError)
	date := fs.String("date", today(), "diary date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := c.App.Daily(ctx, *date)
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to load diary"))
	}
	renderDiary(c.Out, *date, data, c.App.Goals())
	return nil
}

// runWatch re-renders the diary on a ticker, invalidating the date's cache
// entry before each fetch so every cycle shows server state. Stops when
// the context is cancelled (Ctrl-C).
func (c *CLI) runWatch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	date := fs.String("date", today(), "diary date (YYYY-MM-DD)")
	interval := fs.Duration("interval", 30*time.Second, "refresh interval")
	if err := fs.Parse(args); err != nil {
		return err
	}

	render := func() {
		data, err := c.App.RefreshDaily(ctx, *date)
		if err != nil {
			fmt.Fprintf(c.Err, "refresh failed: %s\n", api.ErrorMessage(err, "Failed to load diary"))
			return
		}
		fmt.Fprint(c.Out, "\033[2J\033[H")
		renderDiary(c.Out, *date, data, c.App.Goals())
		fmt.Fprintf(c.Out, "\nRefreshing every %v. Ctrl-C to stop.\n", *interval)
	}

	render()
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			render()
		}
	}
}

func (c *CLI) runLog(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("log requires a subcommand: add, edit, rm")
	}
	switch sub, rest := args[0], args[1:]; sub {
	case "add":
		return c.logAdd(ctx, rest)
	case "edit":
		return c.logEdit(ctx, rest)
	case "rm":
		return c.logRemove(ctx, rest)
	default:
		return fmt.Errorf("unknown log subcommand %q", sub)
	}
}

func (c *CLI) logAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("log add", flag.ContinueOnError)
	food := fs.String("food", "", "food id from the library")
	date := fs.String("date", today(), "diary date")
	meal := fs.String("meal", string(api.Breakfast), "breakfast, lunch, dinner or snack")
	servings := fs.Float64("servings", 1, "servings multiplier")
	notes := fs.String("notes", "", "optional notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *food == "" {
		return fmt.Errorf("log add requires -food")
	}

	log, err := c.App.CreateLog(ctx, api.CreateFoodLogInput{
		FoodID:   *food,
		Date:     *date,
		MealType: api.MealType(*meal),
		Servings: *servings,
		Notes:    *notes,
	})
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to add entry"))
	}
	fmt.Fprintf(c.Out, "Added %s (%.0f kcal) to %s on %s.\n", log.FoodName, log.Calories, log.MealType, log.Date)
	return nil
}

func (c *CLI) logEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("log edit requires a log id")
	}
	id, args := args[0], args[1:]

	fs := flag.NewFlagSet("log edit", flag.ContinueOnError)
	date := fs.String("date", today(), "date the entry is logged under")
	servings := fs.Float64("servings", 0, "new servings multiplier")
	amount := fs.Float64("amount", 0, "new amount in the food's serving unit")
	meal := fs.String("meal", "", "move to another meal")
	notes := fs.String("notes", "", "replace notes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log, err := c.findLog(ctx, *date, id)
	if err != nil {
		return err
	}

	var upd api.FoodLogUpdate
	newServings := *servings
	if newServings == 0 && *amount > 0 {
		// Units toggle: convert the entered amount back into servings via
		// the food's serving size.
		f, err := c.App.FoodByID(ctx, log.FoodID)
		if err != nil {
			return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to load food"))
		}
		newServings = nutrition.ServingsFromUnits(*amount, f.ServingSize)
	}
	if newServings > 0 && newServings != log.Servings {
		upd.Servings = &newServings
		rate := nutrition.PerServing(log.Calories, log.Servings)
		fmt.Fprintf(c.Out, "%s: %.3g -> %.3g servings (%.0f kcal)\n",
			log.FoodName, log.Servings, newServings, nutrition.ScaledTotal(rate, newServings))
	}
	if *meal != "" {
		mt := api.MealType(*meal)
		upd.MealType = &mt
	}
	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	if seen["notes"] {
		upd.Notes = notes
	}
	if upd.Servings == nil && upd.MealType == nil && upd.Notes == nil {
		return fmt.Errorf("nothing to change")
	}

	if _, err := c.App.UpdateLog(ctx, *date, log.ID, upd); err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to update entry"))
	}
	fmt.Fprintln(c.Out, "Updated.")
	return nil
}

func (c *CLI) logRemove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("log rm requires a log id")
	}
	id, args := args[0], args[1:]

	fs := flag.NewFlagSet("log rm", flag.ContinueOnError)
	date := fs.String("date", today(), "date the entry is logged under")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log, err := c.findLog(ctx, *date, id)
	if err != nil {
		return err
	}
	if err := c.App.DeleteLog(ctx, *date, log.ID); err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to delete entry"))
	}
	fmt.Fprintf(c.Out, "Removed %s from %s.\n", log.FoodName, *date)
	return nil
}

// findLog resolves a full or shortened log id within one day's diary.
func (c *CLI) findLog(ctx context.Context, date, id string) (api.FoodLog, error) {
	data, err := c.App.Daily(ctx, date)
	if err != nil {
		return api.FoodLog{}, fmt.Errorf("%s", api.ErrorMessage(err, "Failed to load diary"))
	}
	for _, l := range data.Logs {
		if l.ID == id || shortID(l.ID) == id {
			return l, nil
		}
	}
	return api.FoodLog{}, fmt.Errorf("no log %q on %s", id, date)
}
