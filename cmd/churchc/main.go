package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/xiam/churchc"
	"github.com/xiam/churchc/internal/server"
	"github.com/xiam/churchc/internal/suite"
)

func main() {
	cli, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	cfg, err := churchc.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	switch cli.Mode {
	case "compile":
		runCompile(cli, cfg)
	case "check":
		runCheck(cli, cfg)
	case "serve":
		runServe(cfg)
	default:
		slog.Error("Unknown mode", "mode", cli.Mode)
		os.Exit(1)
	}
}

func runCompile(cli cliConfig, cfg *churchc.Config) {
	if cli.Input == "" {
		fmt.Fprintf(os.Stderr, "Usage: churchc [-stats] [-ast] [-o out.lc] <file%s>\n", sourceExt)
		os.Exit(1)
	}

	session := churchc.NewSession(*cfg)
	defer session.ClearCache()

	out := outputPath(cli.Input, cli.Output)

	var astOut io.Writer
	if cli.AST {
		astOut = os.Stdout
	}

	res, err := compileFile(session, cli.Input, out, astOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Lambda calculus IR written to %s\n", out)

	if cli.Stats {
		churchc.WriteStats(os.Stdout, res)
	}
}

func runCheck(cli cliConfig, cfg *churchc.Config) {
	s, err := suite.LoadFromFile(cli.Input)
	if err != nil {
		slog.Error("Failed to load suite", "path", cli.Input, "error", err)
		os.Exit(1)
	}

	results := suite.Run(s, func() *churchc.Session {
		return churchc.NewSession(*cfg)
	})

	failed := suite.Failed(results)
	for _, r := range failed {
		slog.Error("Case failed", "suite", s.Name, "id", r.ID, "got", r.Got, "error", r.Err)
	}

	fmt.Printf("%s: %d/%d passed\n", s.Name, len(results)-len(failed), len(results))
	if len(failed) > 0 {
		os.Exit(1)
	}
}

func runServe(cfg *churchc.Config) {
	s := server.New(echo.New(), cfg)

	slog.Info("Starting translation service", "port", cfg.Port)
	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
