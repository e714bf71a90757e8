// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/x509-bundle-editor/src/cli"
	"github.com/H0llyW00dzZ/x509-bundle-editor/src/logger"
	verpkg "github.com/H0llyW00dzZ/x509-bundle-editor/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	log := logger.NewCLILogger(cli.DeleteName())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, log, func(ctx context.Context) error {
		return cli.ExecuteDelete(ctx, version, log)
	})
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit code: 0 on success,
// 1 on error and 130 when ctx is cancelled by a signal.
func run(ctx context.Context, log logger.Logger, execute func(context.Context) error) int {
	done := make(chan error, 1)
	go func() {
		done <- execute(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Println(err)
			return 1
		}
		return 0
	case <-ctx.Done():
		log.Println("operation cancelled by signal, finishing the current file")
		// No further file is started once ctx is done; a bundle rewrite
		// already in progress is not interruptible and must complete.
		<-done
		return 130 // Standard exit code for SIGINT
	}
}
