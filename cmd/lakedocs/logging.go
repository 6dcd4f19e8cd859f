package main

import (
	"context"
	"time"

	"github.com/lakedocs/lakedocs/internal/logging"
)

// withCmdRunLogger emits a start log line and returns a context with the
// operation attached to the logger, plus a cleanup function to emit the
// success or failure line.
//
// Usage:
//
//	ctx, cleanup := withCmdRunLogger(ctx, "extract", workspaceRef)
//	defer func() { cleanup(err) }()
func withCmdRunLogger(ctx context.Context, operation, resourceRef string) (context.Context, func(err error)) {
	startAt := time.Now()

	logger := logging.FromContext(ctx).With("op", operation, "ref", resourceRef)
	ctx = logging.WithLogger(ctx, logger)
	logger.Info(ctx, "command started")

	cleanup := func(err error) {
		elapsed := time.Since(startAt).Seconds()
		if err != nil {
			logger.Error(ctx, "command failed", "err", err, "elapsed", elapsed)
			return
		}
		logger.Info(ctx, "command finished", "elapsed", elapsed)
	}
	return ctx, cleanup
}
