package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/enarroied/get-amm/internal/config"
	"github.com/enarroied/get-amm/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	must(err)
	defer logger.Sync()

	cmd := os.Args[1]
	switch cmd {
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", cfg.OutputPath, "output file path")
		format := fs.String("format", cfg.OutputFormat, "legacy|wide|xlsx")
		_ = fs.Parse(os.Args[2:])
		cfg.OutputPath = *out
		cfg.OutputFormat = *format

		runner := pipeline.NewRunner(cfg, logger)
		result, err := runner.Run(context.Background())
		must(err)
		fmt.Printf("run done rows=%d retained=%d output=%s\n", result.SourceRows, result.RetainedRows, result.OutputPath)
	case "export":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		in := fs.String("in", "", "already-downloaded usage csv")
		out := fs.String("out", cfg.OutputPath, "output file path")
		format := fs.String("format", cfg.OutputFormat, "legacy|wide|xlsx")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*in) == "" {
			must(fmt.Errorf("--in is required"))
		}
		cfg.OutputPath = *out
		cfg.OutputFormat = *format

		runner := pipeline.NewRunner(cfg, logger)
		result, err := runner.RunFromCSV(*in)
		must(err)
		fmt.Printf("export done rows=%d retained=%d output=%s\n", result.SourceRows, result.RetainedRows, result.OutputPath)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: get-amm <command>")
	fmt.Println("commands:")
	fmt.Println("  run    [--out=intrants_final.csv] [--format=legacy|wide|xlsx]")
	fmt.Println("  export --in=usages.csv [--out=...] [--format=...]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
