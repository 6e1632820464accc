package suite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/churchc"
	"github.com/xiam/churchc/parser"
	"github.com/xiam/churchc/translator"
)

func newSession() *churchc.Session {
	return churchc.NewSession(churchc.DefaultConfig())
}

func TestParse(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		yaml := `
name: test
cases:
  - id: c1
    source: "1"
    output: "λf.λx.f x"
  - id: c2
    source: "(+ 1)"
    error: arity_mismatch
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "test", s.Name)
		assert.Len(t, s.Cases, 2)
		assert.Equal(t, ErrorArityMismatch, s.Cases[1].Error)
	})

	t.Run("empty cases", func(t *testing.T) {
		_, err := Parse([]byte("name: test\ncases: []\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no cases")
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := Parse([]byte("cases:\n  - source: x\n    output: x\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no id")
	})

	t.Run("duplicated id", func(t *testing.T) {
		_, err := Parse([]byte("cases:\n  - {id: a, source: x, output: x}\n  - {id: a, source: y, output: y}\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicated")
	})

	t.Run("output and error", func(t *testing.T) {
		_, err := Parse([]byte("cases:\n  - {id: a, source: x, output: x, error: malformed_form}\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one")
	})

	t.Run("unknown error kind", func(t *testing.T) {
		_, err := Parse([]byte("cases:\n  - {id: a, source: x, error: boom}\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown error kind")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("cases: [\n"))
		assert.Error(t, err)
	})
}

func TestCoreSuite(t *testing.T) {
	s, err := LoadFromFile("testdata/core.yaml")
	require.NoError(t, err)
	assert.Equal(t, "core", s.Name)

	results := Run(s, newSession)
	require.Len(t, results, len(s.Cases))

	for _, r := range Failed(results) {
		t.Errorf("case %q failed: got %q, err %v", r.ID, r.Got, r.Err)
	}
}

func TestRunReportsMismatch(t *testing.T) {
	s := &Suite{
		Cases: []Case{
			{ID: "wrong-output", Source: "1", Output: "λf.λx.x"},
			{ID: "unexpected-success", Source: "1", Error: ErrorArityMismatch},
			{ID: "wrong-error", Source: "(+ 1)", Error: ErrorMalformedForm},
		},
	}

	results := Run(s, newSession)
	assert.Len(t, Failed(results), 3)
}

func TestKindOf(t *testing.T) {
	_, err := parser.Parse([]byte("("))
	assert.Equal(t, ErrorUnexpectedEOF, KindOf(err))

	assert.Equal(t, ErrorNestingTooDeep, KindOf(&translator.Error{Err: translator.ErrNestingTooDeep}))
	assert.Equal(t, ErrorUnsupportedNumeral, KindOf(&translator.Error{Err: translator.ErrUnsupportedNumeral}))
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("other")))
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile("testdata/missing.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read suite file")
}
