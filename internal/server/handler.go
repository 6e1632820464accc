package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/xiam/churchc"
	"github.com/xiam/churchc/ast"
	"github.com/xiam/churchc/internal/suite"
	"github.com/xiam/churchc/parser"
	"github.com/xiam/churchc/translator"
)

type SourceRequest struct {
	Source string `json:"source"`
}

type TranslateResponse struct {
	Output       string `json:"output"`
	Forms        int    `json:"forms"`
	CacheEntries int    `json:"cache_entries"`
}

type ParseResponse struct {
	Forms int      `json:"forms"`
	AST   []string `json:"ast"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Form  string `json:"form,omitempty"`
	Line  int    `json:"line,omitempty"`
	Col   int    `json:"col,omitempty"`
}

type handler struct {
	cfg *churchc.Config
}

func (h *handler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

var (
	errInvalidBody   = errors.New("invalid request body")
	errMissingSource = errors.New("source is required")
)

func bindSource(c echo.Context) (string, error) {
	var req SourceRequest
	if err := c.Bind(&req); err != nil {
		return "", errInvalidBody
	}
	if strings.TrimSpace(req.Source) == "" {
		return "", errMissingSource
	}
	return req.Source, nil
}

func (h *handler) translate(c echo.Context) error {
	src, err := bindSource(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	// One session per request: numeral caches are never shared between
	// requests.
	session := churchc.NewSession(*h.cfg)
	defer session.ClearCache()

	res, err := session.Compile([]byte(src))
	if err != nil {
		return compileError(c, err)
	}

	return c.JSON(http.StatusOK, TranslateResponse{
		Output:       res.Output,
		Forms:        res.Forms,
		CacheEntries: res.Cache.Entries,
	})
}

func (h *handler) parse(c echo.Context) error {
	src, err := bindSource(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	session := churchc.NewSession(*h.cfg)

	forms, err := session.ParseForms([]byte(src))
	if err != nil {
		return compileError(c, err)
	}

	encoded := make([]string, 0, len(forms))
	for _, form := range forms {
		encoded = append(encoded, string(ast.Encode(form)))
	}

	return c.JSON(http.StatusOK, ParseResponse{
		Forms: len(forms),
		AST:   encoded,
	})
}

func compileError(c echo.Context, err error) error {
	resp := ErrorResponse{
		Error: err.Error(),
		Kind:  string(suite.KindOf(err)),
	}

	var perr *parser.Error
	if errors.As(err, &perr) {
		resp.Line, resp.Col = perr.Line, perr.Col
		return c.JSON(http.StatusBadRequest, resp)
	}

	var terr *translator.Error
	if errors.As(err, &terr) {
		resp.Form = terr.Form
		resp.Line, resp.Col = terr.Line, terr.Col
		return c.JSON(http.StatusUnprocessableEntity, resp)
	}

	slog.Error("Unexpected compile error", "error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
