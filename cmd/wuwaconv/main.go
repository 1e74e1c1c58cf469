package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"wuwaconv/internal/config"
	"wuwaconv/internal/convert"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "batch":
		runner := convert.NewRunner(cfg)
		must(runner.Run(context.Background()))
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "input .xlsx or .json file")
		out := fs.String("out", cfg.ExportDir, "output directory")
		_ = fs.Parse(os.Args[2:])
		if *input == "" {
			must(fmt.Errorf("--input is required"))
		}
		runner := convert.NewRunner(cfg)
		must(runner.ConvertFile(context.Background(), *input, *out))
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: wuwaconv <command>")
	fmt.Println("commands:")
	fmt.Println("  batch                          convert every file in the data directory")
	fmt.Println("  run --input=... [--out=...]    convert a single file")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
