// Command dictdump loads a pronunciation dictionary pair and prints the
// sorted diagnostic listing to stdout. It is intended for inspecting
// dictionary files offline, not as part of the main server.
//
// Flags:
//
//	--word            word dictionary location (path, file:// or http(s) URL)
//	--filler          filler dictionary location
//	--add-sil-ending  duplicate each word pronunciation with a trailing silence
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/klattlab/pronlex/internal/dictionary"
	"github.com/klattlab/pronlex/internal/resource"
	"github.com/klattlab/pronlex/internal/unit"
)

func main() {
	wordFlag := flag.String("word", "", "word dictionary location")
	fillerFlag := flag.String("filler", "", "filler dictionary location")
	silFlag := flag.Bool("add-sil-ending", false, "append a silence-suffixed variant of each word pronunciation")
	flag.Parse()

	if *wordFlag == "" || *fillerFlag == "" {
		fmt.Fprintln(os.Stderr, "dictdump: --word and --filler are required")
		flag.Usage()
		os.Exit(1)
	}

	// Diagnostics go to stderr so the dump on stdout stays clean.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	dict := dictionary.New(logger, unit.NewManager(), resource.Open, dictionary.Options{
		WordLocation:   *wordFlag,
		FillerLocation: *fillerFlag,
		AddSilEnding:   *silFlag,
	})

	if err := dict.Allocate(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "dictdump: %v\n", err)
		os.Exit(1)
	}

	dump, err := dict.Dump()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dictdump: %v\n", err)
		os.Exit(1)
	}

	io.WriteString(os.Stdout, dump) //nolint:errcheck
}
