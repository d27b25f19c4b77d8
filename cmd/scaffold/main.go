package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/toyz/scaffold/internal/errors"
	"github.com/toyz/scaffold/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer logger.Cleanup()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		// scaffold errors have already been reported with their suggestions
		if errors.CodeOf(err) == errors.UnknownErrorCode {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		logger.Cleanup()
		os.Exit(1)
	}
}
