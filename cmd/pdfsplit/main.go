package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"pdfsplit/internal/split"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	opts := split.DefaultOptions()
	flag.StringVar(&opts.OutputDir, "o", "", "output directory (default: a sibling folder named after the input file)")
	flag.StringVar(&opts.OutputDir, "output_dir", "", "alias for -o")
	flag.IntVar(&opts.Level, "level", opts.Level, "bookmark depth to split at: 0 for all levels, 1 for top level only")
	noSequence := flag.Bool("no-sequence", false, "do not prefix output files with a chapter number")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] input.pdf\n\nSplit a PDF into chapters along its bookmarks.\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.AddSequence = !*noSequence

	inputPath := flag.Arg(0)
	res, err := split.Run(inputPath, opts, log)
	if err != nil {
		log.Error("split failed", "error", err)
		os.Exit(1)
	}
	if len(res.Written) == 0 {
		log.Error("no chapters produced", "input", inputPath)
		os.Exit(1)
	}

	fmt.Printf("%d chapters written, %d skipped, %d failed\n",
		res.Succeeded, res.Skipped, res.Failed)
}
