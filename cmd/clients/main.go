package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"odooseed/internal/app"
	"odooseed/internal/config"
	"odooseed/pkg/contracts"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("clients", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", "", "output file name or path (defaults to odoo_clients.xlsx in the output dir)")
	minRows := fs.Int("min-rows", -1, "minimum number of client rows, padded with filler companies; -1 keeps the configured value")
	version := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *version {
		fmt.Fprintln(stdout, contracts.GetFullVersionString("clients"))
		return 0
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	if *out != "" {
		cfg.Export.ClientsFile = *out
	}
	if *minRows != -1 {
		cfg.Export.MinClientRows = *minRows
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	application, err := app.NewApplication(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to start: %v\n", err)
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := application.Shutdown(ctx); err != nil {
			slog.Warn("Shutdown failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := application.ExportClients(ctx)
	if err != nil {
		application.Logger.Error("Clients export failed", slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, result.Message())
	return 0
}
