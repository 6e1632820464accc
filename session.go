// Package churchc compiles S-expressions into untyped λ-calculus text.
//
// A Session owns the numeral cache shared by every translation made through
// it. Independent compilations should either use their own Session or call
// ClearCache in between.
package churchc

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xiam/churchc/ast"
	"github.com/xiam/churchc/numeral"
	"github.com/xiam/churchc/parser"
	"github.com/xiam/churchc/translator"
)

// Session is a compilation session.
type Session struct {
	ID string

	cfg    Config
	cache  *numeral.Cache
	tr     *translator.Translator
	logger *slog.Logger
}

// Result is the outcome of Compile.
type Result struct {
	Output string
	Forms  int

	ParseTime     time.Duration
	TranslateTime time.Duration

	Cache numeral.Stats
}

// NewSession creates a session with an empty numeral cache.
func NewSession(cfg Config) *Session {
	id := uuid.NewString()
	logger := slog.Default().With("session", id)

	cache := numeral.NewCache()

	return &Session{
		ID:     id,
		cfg:    cfg,
		cache:  cache,
		logger: logger,
		tr: translator.New(cache,
			translator.WithMaxDepth(cfg.MaxDepth),
			translator.WithMaxNumeral(cfg.MaxNumeral),
			translator.WithLogger(logger),
		),
	}
}

func (s *Session) newParser(src []byte) *parser.Parser {
	p := parser.New(bytes.NewReader(src))
	p.SetOptions(parser.Options{MaxDepth: s.cfg.MaxDepth})
	return p
}

// Parse returns the root node of src: the only top-level form, or a list of
// all of them when there are several.
func (s *Session) Parse(src []byte) (*ast.Node, error) {
	p := s.newParser(src)
	if err := p.Parse(); err != nil {
		return nil, err
	}
	return p.Root(), nil
}

// ParseForms returns the top-level forms of src.
func (s *Session) ParseForms(src []byte) ([]*ast.Node, error) {
	p := s.newParser(src)
	if err := p.Parse(); err != nil {
		return nil, err
	}
	return p.Forms(), nil
}

// Translate returns the λ-calculus text of a single node.
func (s *Session) Translate(node *ast.Node) (string, error) {
	return s.tr.Translate(node)
}

// CacheEntryCount returns the number of memoized numerals.
func (s *Session) CacheEntryCount() int {
	return s.cache.Len()
}

// ClearCache empties the numeral cache.
func (s *Session) ClearCache() {
	s.logger.Debug("Clearing numeral cache", "entries", s.cache.Len())
	s.cache.Reset()
}

// CacheStats returns the counters of the numeral cache.
func (s *Session) CacheStats() numeral.Stats {
	return s.cache.Stats()
}

// Compile translates every top-level form of src, one per output line. It
// stops at the first error.
func (s *Session) Compile(src []byte) (*Result, error) {
	start := time.Now()

	forms, err := s.ParseForms(src)
	if err != nil {
		s.logger.Debug("Parse failed", "error", err)
		return nil, fmt.Errorf("parse: %w", err)
	}

	parsed := time.Now()

	var out strings.Builder
	for i, form := range forms {
		term, err := s.Translate(form)
		if err != nil {
			s.logger.Debug("Translate failed", "form", i, "error", err)
			return nil, fmt.Errorf("translate: %w", err)
		}
		out.WriteString(term)
		out.WriteByte('\n')
	}

	res := &Result{
		Output:        out.String(),
		Forms:         len(forms),
		ParseTime:     parsed.Sub(start),
		TranslateTime: time.Since(parsed),
		Cache:         s.cache.Stats(),
	}

	s.logger.Debug("Compiled",
		"forms", res.Forms,
		"bytes", len(res.Output),
		"cache_entries", res.Cache.Entries,
	)

	return res, nil
}
