package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"release-auction/utils"

	"github.com/spf13/pflag"
)

func main() {
	args, err := ParseArgs(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if err := args.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		args.Usage()
		os.Exit(2)
	}
	if err := utils.SetLevel(args.LogLevel); err != nil {
		utils.Fatal("invalid log level", map[string]any{"log_level": args.LogLevel, "error": err.Error()})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, args, os.Stdout); err != nil {
		stop()
		utils.Error("command failed", map[string]any{"command": args.Command, "error": err.Error()})
		os.Exit(1)
	}
}
