package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/claimtrainer/internal/drill"
	"github.com/okian/claimtrainer/pkg/logger"
)

// Default configuration constants.
const (
	defaultTimeout      = 10 * time.Second
	defaultDrillTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:9080", "Base URL of the service")
		workers = flag.Int("workers", runtime.NumCPU(), "Number of concurrent trainees")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		jsonLog = flag.Bool("json", false, "Write logs as JSON")
		verbose = flag.Bool("verbose", false, "Log every claim result")
	)
	flag.Parse()

	format := logger.FormatText
	if *jsonLog {
		format = logger.FormatJSON
	}
	if err := logger.Init(logger.WithFormat(format)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultDrillTimeout)
	defer cancel()

	_, err := drill.Run(ctx, &drill.Config{
		BaseURL: *baseURL,
		Workers: *workers,
		Timeout: *timeout,
		Verbose: *verbose,
	})
	if err != nil {
		logger.Get().Error(ctx, "drill failed", logger.Error(err))
		cancel()
		os.Exit(1)
	}
}
