package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"caltrack/internal/api"
	"caltrack/internal/app"
	"caltrack/internal/cli"
	"caltrack/internal/config"
	"caltrack/internal/logger"
	"caltrack/internal/session"
)

func main() {
	debug := flag.Bool("debug", false, "log request diagnostics to stderr")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), cli.Usage())
		flag.PrintDefaults()
	}
	flag.Parse()

	log, err := logger.New(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "caltrack:", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, _ := config.Load()

	sess := session.Load(cfg.SessionPath())
	client := api.NewClient(cfg.APIBaseURL, sess.Token, log)
	a := app.New(client, sess, log)

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := &cli.CLI{App: a, Out: os.Stdout, Err: os.Stderr}
	if err := c.Run(ctx, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "caltrack:", err)
		os.Exit(1)
	}
}
