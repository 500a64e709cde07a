package cli

import (
	"fmt"
	"io"
	"strings"

	"caltrack/internal/api"
	"caltrack/internal/app"
	"caltrack/internal/nutrition"
)

// bar draws a fixed-width progress gauge, the terminal stand-in for the
// app's calorie ring and macro bars.
func bar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func renderDiary(w io.Writer, date string, data api.DailyData, goals app.Goals) {
	s := data.Summary
	consumed := s.TotalCalories
	left := nutrition.CaloriesRemaining(goals.Calories, consumed)
	pct := nutrition.ProgressPercent(consumed, goals.Calories)

	fmt.Fprintf(w, "Diary - %s\n\n", date)
	fmt.Fprintf(w, "  %.0f kcal consumed, %.0f left\n", consumed, left)
	fmt.Fprintf(w, "  %s %3.0f%% of %.0f kcal\n\n", bar(pct, 30), pct, goals.Calories)

	renderMacro(w, "protein", s.TotalProtein, goals.Protein)
	renderMacro(w, "carbs", s.TotalCarbs, goals.Carbs)
	renderMacro(w, "fats", s.TotalFats, goals.Fats)
	fmt.Fprintln(w)

	for _, mt := range api.MealTypes {
		ms := s.MealBreakdown[string(mt)]
		if ms != nil && ms.Count > 0 {
			fmt.Fprintf(w, "%s - %d item(s), %.0f kcal\n", strings.ToUpper(string(mt)), ms.Count, ms.Calories)
		} else {
			fmt.Fprintf(w, "%s - no items\n", strings.ToUpper(string(mt)))
		}
		for _, l := range data.Logs {
			if l.MealType != mt {
				continue
			}
			fmt.Fprintf(w, "  %-10s %-24s %.3g srv  %6.0f kcal  P%.0f C%.0f F%.0f",
				shortID(l.ID), l.FoodName, l.Servings, l.Calories, l.Protein, l.Carbs, l.Fats)
			if l.Notes != "" {
				fmt.Fprintf(w, "  (%s)", l.Notes)
			}
			fmt.Fprintln(w)
		}
	}
}

func renderMacro(w io.Writer, label string, current, goal float64) {
	pct := nutrition.ProgressPercent(current, goal)
	fmt.Fprintf(w, "  %-8s %s %4.0f/%.0fg\n", label, bar(pct, 20), current, goal)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
