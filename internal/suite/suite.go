// Package suite loads and runs golden translation suites written in YAML.
package suite

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xiam/churchc"
	"github.com/xiam/churchc/parser"
	"github.com/xiam/churchc/translator"
	"gopkg.in/yaml.v3"
)

// ErrorKind names an expected failure in a suite file.
type ErrorKind string

// Error kinds
const (
	ErrorUnexpectedEOF      ErrorKind = "unexpected_eof"
	ErrorUnexpectedToken    ErrorKind = "unexpected_token"
	ErrorNestingTooDeep     ErrorKind = "nesting_too_deep"
	ErrorArityMismatch      ErrorKind = "arity_mismatch"
	ErrorMalformedForm      ErrorKind = "malformed_form"
	ErrorUnsupportedNumeral ErrorKind = "unsupported_numeral"
)

var errorKinds = map[ErrorKind]bool{
	ErrorUnexpectedEOF:      true,
	ErrorUnexpectedToken:    true,
	ErrorNestingTooDeep:     true,
	ErrorArityMismatch:      true,
	ErrorMalformedForm:      true,
	ErrorUnsupportedNumeral: true,
}

// KindOf returns the ErrorKind matching err, or an empty string if err is not
// a parse or translate error.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, parser.ErrUnexpectedEOF):
		return ErrorUnexpectedEOF
	case errors.Is(err, parser.ErrUnexpectedToken):
		return ErrorUnexpectedToken
	case errors.Is(err, parser.ErrNestingTooDeep), errors.Is(err, translator.ErrNestingTooDeep):
		return ErrorNestingTooDeep
	case errors.Is(err, translator.ErrArityMismatch):
		return ErrorArityMismatch
	case errors.Is(err, translator.ErrMalformedForm):
		return ErrorMalformedForm
	case errors.Is(err, translator.ErrUnsupportedNumeral):
		return ErrorUnsupportedNumeral
	}
	return ""
}

// Suite is a named list of cases.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case is a source text and either its expected output or its expected
// error kind. Output is compared after trimming surrounding whitespace.
type Case struct {
	ID     string    `yaml:"id"`
	Source string    `yaml:"source"`
	Output string    `yaml:"output,omitempty"`
	Error  ErrorKind `yaml:"error,omitempty"`
}

// Result is the outcome of running one case.
type Result struct {
	ID     string
	Passed bool
	Got    string
	Err    error
}

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}
	seen := map[string]bool{}
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("case %q is duplicated", c.ID)
		}
		seen[c.ID] = true
		if (c.Output == "") == (c.Error == "") {
			return nil, fmt.Errorf("case %q must have exactly one of output or error", c.ID)
		}
		if c.Error != "" {
			if !errorKinds[c.Error] {
				return nil, fmt.Errorf("case %q has unknown error kind %q", c.ID, c.Error)
			}
		}
	}
	return &s, nil
}

// Run compiles every case with a fresh session from newSession.
func Run(s *Suite, newSession func() *churchc.Session) []Result {
	results := make([]Result, 0, len(s.Cases))
	for _, c := range s.Cases {
		results = append(results, runCase(c, newSession()))
	}
	return results
}

func runCase(c Case, session *churchc.Session) Result {
	defer session.ClearCache()

	res := Result{ID: c.ID}

	out, err := session.Compile([]byte(c.Source))
	if err != nil {
		res.Err = err
		res.Passed = c.Error != "" && KindOf(err) == c.Error
		return res
	}

	res.Got = strings.TrimSpace(out.Output)
	res.Passed = c.Error == "" && res.Got == strings.TrimSpace(c.Output)
	return res
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	failed := []Result{}
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
