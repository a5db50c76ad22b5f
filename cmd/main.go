package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kilometers.ai/sched/internal/interfaces/cli"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		// The form restores the terminal once ctx is done; a prompt blocked
		// on stdin never returns, so exit after a short grace period.
		cancel()
		select {
		case <-sigChan:
		case <-time.After(2 * time.Second):
		}
		os.Exit(130)
	}()

	cli.Execute(ctx)
}
