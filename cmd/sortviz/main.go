package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/sortviz/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	algorithm := flag.String("algo", "", "initial algorithm: bubble, selection, insertion, quick or merge")
	delayMS := flag.Int("delay", -1, "pacing delay between steps in milliseconds (optional, defaults to 50)")
	size := flag.Int("size", 0, "number of bars (optional, defaults to 50)")
	debug := flag.Bool("debug", false, "write debug logs to the configured log file")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Algorithm:  *algorithm,
		DelayMS:    *delayMS,
		Size:       *size,
		Debug:      *debug,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "sortviz: %v\n", err)
		return 1
	}
	return 0
}
