// Command maintlog is a terminal front end for the maintenance log. Each
// subcommand drives the same list and detail state holders a screen would.
//
// Usage:
//
//	maintlog [-config path] <command> [flags]
//
// Commands:
//
//	list       [-q text] [-equipment name]
//	show       -id N
//	save       [-id N] -title T [-content C] [-equipment E] [-image P]... [-remove-image P]...
//	delete     -id N
//	equipment
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/papermill/maintenance-log/internal/app"
	"github.com/papermill/maintenance-log/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file (default: $CONFIG_PATH or ./config.yaml)")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Println(app.BuildVersion())
		return
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	path := *configFlag
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("open record store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = runCommand(ctx, a, flag.Args(), os.Stdout)
	a.Close()

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Error("command failed",
			slog.String("command", flag.Arg(0)),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "usage: maintlog [-config path] <list|show|save|delete|equipment> [flags]")
	flag.PrintDefaults()
}
