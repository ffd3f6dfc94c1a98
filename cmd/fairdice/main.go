package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	gamecmd "github.com/louisbranch/fairdice/internal/cmd/game"
	"github.com/louisbranch/fairdice/internal/platform/config"
	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
)

func main() {
	cfg, err := gamecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[FAIRDICE] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := gamecmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		if apperrors.GetCode(err).Configuration() {
			config.ExitErr(cfg.Locale, err)
		}
		log.Fatalf("game stopped: %v", err)
	}
}
