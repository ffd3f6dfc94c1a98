package main

import (
	"context"
	"flag"
	"os"

	"github.com/louisbranch/fairdice/internal/platform/config"
	"github.com/louisbranch/fairdice/internal/tools/verify"
)

func main() {
	cfg, err := verify.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := verify.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.ExitErr(cfg.Locale, err)
	}
}
