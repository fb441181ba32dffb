package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/cmlabs-hris/employee-entry/internal/config"
	"github.com/cmlabs-hris/employee-entry/internal/console"
	"github.com/cmlabs-hris/employee-entry/internal/form"
	"github.com/cmlabs-hris/employee-entry/internal/pkg/empclient"
	"github.com/cmlabs-hris/employee-entry/internal/pkg/logger"
)

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	log := logger.NewText(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := empclient.NewClient(cfg.BaseURL, empclient.WithTimeout(cfg.Timeout))
	f := form.New(client, log)

	if err := console.New(f, os.Stdin, os.Stdout).Run(ctx); err != nil && ctx.Err() == nil {
		log.Error("Console stopped with error", "error", err)
		os.Exit(1)
	}
}
