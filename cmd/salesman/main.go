// Command salesman shortens a closed tour over the cities listed in a
// coordinate file using simulated annealing under great-circle distance.
//
// Usage:
//
//	salesman [flags] <input-file>
//
// It prints the initial and optimized tour lengths and writes the optimized
// route, one city per line, to -out.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/geotour/internal/config"
	"github.com/katalvlaran/geotour/internal/logger"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		logger.Default.Warn("ignoring .env", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := newApp(os.Stdout, os.Stderr, os.Getenv).run(ctx, os.Args[1:])
	stop()

	os.Exit(code)
}
