// Command pronlexd is the lexicon server daemon. It loads the word and
// filler dictionaries at startup and serves pronunciation lookups over
// HTTP until interrupted.
//
// Configuration comes from CONFIG_PATH (or ./config.yaml), with
// environment variable overrides.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/klattlab/pronlex/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("pronlexd: %v", err)
	}
}
