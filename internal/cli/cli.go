// Package cli renders the application's views as terminal output and
// translates flags into query and mutation calls. Each command maps to one
// screen of the mobile app: diary, foods library, progress, profile.
package cli

import (
	"context"
	"fmt"
	"io"

	"caltrack/internal/app"
)

const usage = `usage: caltrack [options] <command>

Commands:
	register	create an account (-email, -password, -name)
	login		log in (-email, -password)
	logout		drop the local session

	diary		show one day's food diary (-date, default today)
	watch		live-refresh the diary on an interval
	log		add/edit/rm diary entries
	foods		browse and edit the food library
	progress	weight history and trend
	weight		add/rm weight entries
	profile		show or update profile and goals
	tdee		server-side calorie estimate from body metrics

Options:
`

type CLI struct {
	App *app.App
	Out io.Writer
	Err io.Writer
}

// Run dispatches a single invocation. The unauthenticated command set is
// login/register only; everything else requires a session.
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command")
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "login", "register":
		return c.runAuth(ctx, cmd, rest)
	}

	if !c.App.Session.IsAuthenticated() {
		return fmt.Errorf("not logged in; run `caltrack login` first")
	}

	switch cmd {
	case "logout":
		if err := c.App.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(c.Out, "Logged out.")
		return nil
	case "diary":
		return c.runDiary(ctx, rest)
	case "watch":
		return c.runWatch(ctx, rest)
	case "log":
		return c.runLog(ctx, rest)
	case "foods":
		return c.runFoods(ctx, rest)
	case "progress":
		return c.runProgress(ctx, rest)
	case "weight":
		return c.runWeight(ctx, rest)
	case "profile":
		return c.runProfile(ctx, rest)
	case "tdee":
		return c.runTDEE(ctx)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// Usage is the top-level help text, printed by main's flag.Usage.
func Usage() string { return usage }
