package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xiam/churchc"
	"github.com/xiam/churchc/ast"
)

const (
	sourceExt = ".lctest"
	outputExt = ".lc"
)

var (
	errBadExtension = errors.New("input file must have " + sourceExt + " extension")
	errEmptySource  = errors.New("input file is empty or whitespace only")
)

func outputPath(input, output string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + outputExt
}

// compileFile compiles input and writes the result to output. Nothing is
// written if compilation fails.
func compileFile(session *churchc.Session, input, output string, astOut io.Writer) (*churchc.Result, error) {
	if !strings.HasSuffix(input, sourceExt) {
		return nil, errBadExtension
	}

	src, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("could not open input file %s: %w", input, err)
	}
	if strings.TrimSpace(string(src)) == "" {
		return nil, errEmptySource
	}

	if astOut != nil {
		forms, err := session.ParseForms(src)
		if err != nil {
			return nil, fmt.Errorf("parse: %w", err)
		}
		for _, form := range forms {
			ast.Print(astOut, form)
		}
	}

	res, err := session.Compile(src)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(output, []byte(res.Output), 0644); err != nil {
		return nil, fmt.Errorf("could not write to %s: %w", output, err)
	}

	return res, nil
}
