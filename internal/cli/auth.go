package cli

import (
	"context"
	"flag"
	"fmt"

	"caltrack/internal/api"
)

func (c *CLI) runAuth(ctx context.Context, cmd string, args []string) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "display name (register only)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("%s requires -email and -password", cmd)
	}

	var (
		u   api.User
		err error
	)
	if cmd == "register" {
		u, err = c.App.Register(ctx, *email, *password, *name)
	} else {
		u, err = c.App.Login(ctx, *email, *password)
	}
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "Authentication failed"))
	}

	who := u.Name
	if who == "" {
		who = u.Email
	}
	fmt.Fprintf(c.Out, "Logged in as %s.\n", who)
	return nil
}
