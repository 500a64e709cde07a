package cli

import (
	"context"
	"flag"
	"fmt"

	"caltrack/internal/api"
)

func (c *CLI) runProfile(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "set" {
		return c.profileSet(ctx, args[1:])
	}

	u, err := c.App.Profile(ctx)
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to load profile"))
	}

	fmt.Fprintf(c.Out, "%s <%s>\n\n", u.Name, u.Email)
	if u.CurrentWeight != nil {
		fmt.Fprintf(c.Out, "  weight:   %.1f kg\n", *u.CurrentWeight)
	}
	if u.GoalWeight != nil {
		fmt.Fprintf(c.Out, "  goal:     %.1f kg\n", *u.GoalWeight)
	}
	if u.Height != nil {
		fmt.Fprintf(c.Out, "  height:   %.0f cm\n", *u.Height)
	}
	if u.Age != nil {
		fmt.Fprintf(c.Out, "  age:      %d\n", *u.Age)
	}
	if u.Gender != "" {
		fmt.Fprintf(c.Out, "  gender:   %s\n", u.Gender)
	}
	if u.ActivityLevel != "" {
		fmt.Fprintf(c.Out, "  activity: %s\n", u.ActivityLevel)
	}
	fmt.Fprintf(c.Out, "\n  Daily goals: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fats\n",
		u.DailyCalorieGoal, u.ProteinGoal, u.CarbsGoal, u.FatsGoal)
	return nil
}

func (c *CLI) profileSet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile set", flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	weight := fs.Float64("weight", 0, "current weight in kg")
	goalWeight := fs.Float64("goal-weight", 0, "goal weight in kg")
	height := fs.Float64("height", 0, "height in cm")
	age := fs.Int("age", 0, "age in years")
	gender := fs.String("gender", "", "male, female or other")
	activity := fs.String("activity", "", "sedentary, light, moderate, active, very active")
	calories := fs.Float64("calories", 0, "daily calorie goal")
	protein := fs.Float64("protein", 0, "daily protein goal (g)")
	carbs := fs.Float64("carbs", 0, "daily carbs goal (g)")
	fats := fs.Float64("fats", 0, "daily fats goal (g)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var upd api.ProfileUpdate
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			upd.Name = name
		case "weight":
			upd.CurrentWeight = weight
		case "goal-weight":
			upd.GoalWeight = goalWeight
		case "height":
			upd.Height = height
		case "age":
			upd.Age = age
		case "gender":
			upd.Gender = gender
		case "activity":
			upd.ActivityLevel = activity
		case "calories":
			upd.DailyCalorieGoal = calories
		case "protein":
			upd.ProteinGoal = protein
		case "carbs":
			upd.CarbsGoal = carbs
		case "fats":
			upd.FatsGoal = fats
		}
	})
	if upd == (api.ProfileUpdate{}) {
		return fmt.Errorf("nothing to change")
	}

	if _, err := c.App.UpdateProfile(ctx, upd); err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to update profile"))
	}
	fmt.Fprintln(c.Out, "Profile updated.")
	return nil
}

func (c *CLI) runTDEE(ctx context.Context) error {
	res, err := c.App.CalculateTDEE(ctx)
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to calculate TDEE"))
	}
	fmt.Fprintf(c.Out, "Estimated TDEE: %.0f kcal/day.\n", res.TDEE)
	fmt.Fprintf(c.Out, "Set it as your goal with `caltrack profile set -calories %.0f`.\n", res.TDEE)
	return nil
}
