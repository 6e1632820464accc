package main

import (
	"flag"
	"io"
)

type cliConfig struct {
	Mode   string
	Input  string
	Output string
	Stats  bool
	AST    bool
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("churchc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.Mode, "mode", "compile", "Run mode: compile, check or serve")
	fs.StringVar(&cfg.Output, "o", "", "Output path (compile mode, defaults to the input path with a .lc extension)")
	fs.BoolVar(&cfg.Stats, "stats", false, "Print compilation statistics")
	fs.BoolVar(&cfg.AST, "ast", false, "Print the parsed tree of every top-level form")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.Input = fs.Arg(0)
	return cfg, nil
}
