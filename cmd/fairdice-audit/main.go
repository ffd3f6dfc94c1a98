package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/fairdice/internal/platform/config"
	"github.com/louisbranch/fairdice/internal/tools/audit"
)

func main() {
	cfg, err := audit.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := audit.Run(ctx, cfg, os.Stdout, nil); err != nil {
		config.Exitf("audit: %v", err)
	}
}
