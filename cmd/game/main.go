package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/tomz197/splitroids/internal/config"
	"github.com/tomz197/splitroids/internal/logging"
	"github.com/tomz197/splitroids/internal/loop"
)

func main() {
	// Stdout is the playfield, so logs only go to ASTEROIDS_LOG_FILE.
	logger, closeLog, err := logging.FromEnv(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	seed, err := config.GetEnvInt64(config.EnvSeed, time.Now().UnixNano())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Logger: logger,
		Seed:   seed,
	})
	stop()
	_ = term.Restore(fd, oldState)

	if err != nil {
		logger.Error("game failed", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
