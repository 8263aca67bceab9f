package commands

import (
	"context"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
)

// Interruptible returns a context which is cancelled when the process receives SIGINT or SIGTERM.
// A running session stops before reading its next chunk. Call the returned function when done.
func Interruptible() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-interrupted:
			log.Infof("Received %v, stopping...", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(interrupted)
		cancel()
	}
}
