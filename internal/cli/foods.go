package cli

import (
	"context"
	"flag"
	"fmt"

	"caltrack/internal/api"
)

func (c *CLI) runFoods(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch sub, rest := args[0], args[1:]; sub {
		case "show":
			return c.foodShow(ctx, rest)
		case "add":
			return c.foodAdd(ctx, rest)
		case "edit":
			return c.foodEdit(ctx, rest)
		case "rm":
			return c.foodRemove(ctx, rest)
		}
	}
	return c.foodList(ctx, args)
}

func (c *CLI) foodList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("foods", flag.ContinueOnError)
	search := fs.String("search", "", "filter by name")
	category := fs.String("category", "", "filter by category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	foods, err := c.App.Foods(ctx, api.FoodFilter{Search: *search, Category: *category})
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to load foods"))
	}
	if len(foods) == 0 {
		fmt.Fprintln(c.Out, "No foods in the library.")
		return nil
	}

	fmt.Fprintf(c.Out, "%-10s %-24s %8s %6s %6s %6s  %s\n", "ID", "NAME", "KCAL", "P", "C", "F", "SERVING")
	for _, f := range foods {
		fmt.Fprintf(c.Out, "%-10s %-24s %8.0f %6.1f %6.1f %6.1f  %.3g %s",
			shortID(f.ID), f.Name, f.Calories, f.Protein, f.Carbs, f.Fats, f.ServingSize, f.ServingUnit)
		if f.Category != "" {
			fmt.Fprintf(c.Out, "  [%s]", f.Category)
		}
		fmt.Fprintln(c.Out)
	}
	return nil
}

func (c *CLI) foodShow(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("foods show requires a food id")
	}
	f, err := c.resolveFood(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "%s (%s)\n", f.Name, f.ID)
	fmt.Fprintf(c.Out, "  per %.3g %s: %.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fats\n",
		f.ServingSize, f.ServingUnit, f.Calories, f.Protein, f.Carbs, f.Fats)
	if f.Category != "" {
		fmt.Fprintf(c.Out, "  category: %s\n", f.Category)
	}
	return nil
}

func (c *CLI) foodAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("foods add", flag.ContinueOnError)
	name := fs.String("name", "", "food name")
	calories := fs.Float64("calories", 0, "kcal per serving")
	protein := fs.Float64("protein", 0, "grams per serving")
	carbs := fs.Float64("carbs", 0, "grams per serving")
	fats := fs.Float64("fats", 0, "grams per serving")
	size := fs.Float64("size", 1, "serving size")
	unit := fs.String("unit", "serving", "serving unit, e.g. g, ml, piece")
	category := fs.String("category", "", "optional category")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("foods add requires -name")
	}

	f, err := c.App.CreateFood(ctx, api.CreateFoodInput{
		Name:        *name,
		Calories:    *calories,
		Protein:     *protein,
		Carbs:       *carbs,
		Fats:        *fats,
		ServingSize: *size,
		ServingUnit: *unit,
		Category:    *category,
	})
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to create food"))
	}
	fmt.Fprintf(c.Out, "Added %s (%s).\n", f.Name, shortID(f.ID))
	return nil
}

func (c *CLI) foodEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("foods edit requires a food id")
	}
	id, args := args[0], args[1:]

	fs := flag.NewFlagSet("foods edit", flag.ContinueOnError)
	name := fs.String("name", "", "food name")
	calories := fs.Float64("calories", 0, "kcal per serving")
	protein := fs.Float64("protein", 0, "grams per serving")
	carbs := fs.Float64("carbs", 0, "grams per serving")
	fats := fs.Float64("fats", 0, "grams per serving")
	size := fs.Float64("size", 0, "serving size")
	unit := fs.String("unit", "", "serving unit")
	category := fs.String("category", "", "category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := c.resolveFood(ctx, id)
	if err != nil {
		return err
	}

	var upd api.FoodUpdate
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			upd.Name = name
		case "calories":
			upd.Calories = calories
		case "protein":
			upd.Protein = protein
		case "carbs":
			upd.Carbs = carbs
		case "fats":
			upd.Fats = fats
		case "size":
			upd.ServingSize = size
		case "unit":
			upd.ServingUnit = unit
		case "category":
			upd.Category = category
		}
	})
	if upd == (api.FoodUpdate{}) {
		return fmt.Errorf("nothing to change")
	}

	if _, err := c.App.UpdateFood(ctx, f.ID, upd); err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to update food"))
	}
	fmt.Fprintln(c.Out, "Updated.")
	return nil
}

func (c *CLI) foodRemove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("foods rm requires a food id")
	}
	f, err := c.resolveFood(ctx, args[0])
	if err != nil {
		return err
	}
	if err := c.App.DeleteFood(ctx, f.ID); err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to delete food"))
	}
	fmt.Fprintf(c.Out, "Removed %s from the library.\n", f.Name)
	return nil
}

// resolveFood accepts a full id or the shortened form shown in listings.
func (c *CLI) resolveFood(ctx context.Context, id string) (api.Food, error) {
	f, err := c.App.FoodByID(ctx, id)
	if err == nil {
		return f, nil
	}
	foods, listErr := c.App.Foods(ctx, api.FoodFilter{})
	if listErr != nil {
		return api.Food{}, fmt.Errorf("%s", api.ErrorMessage(err, "Failed to load food"))
	}
	for _, f := range foods {
		if shortID(f.ID) == id {
			return f, nil
		}
	}
	return api.Food{}, fmt.Errorf("no food %q in the library", id)
}
