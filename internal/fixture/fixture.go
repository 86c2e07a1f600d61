// Package fixture loads decompiler test cases: a handler's bytecode, the
// names and literals it refers to, and the source it should come out as.
// Files are JSON with comments and trailing commas (hujson), so bytecode can
// be annotated an instruction per line.
package fixture

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Heliodex/lingodec/ast"
	"github.com/Heliodex/lingodec/lingo"
	"github.com/tailscale/hujson"
)

// Ext is the extension LoadDir looks for.
const Ext = ".hujson"

var ErrBadLiteral = errors.New("bad literal")

type Handler struct {
	Name    string   `json:"name"`
	Args    []string `json:"args"`
	Globals []string `json:"globals"`
	Locals  []string `json:"locals"`
}

// Literal is a pool constant. Type is one of string, int, float, symbol or
// raw, the last being hex-encoded Mac Roman text as it sits in a file.
type Literal struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

type Fixture struct {
	Name string `json:"-"`

	Handler  Handler   `json:"handler"`
	Names    []string  `json:"names"`
	Handlers []string  `json:"handlers"`
	Literals []Literal `json:"literals"`
	// hex, any grouping
	Code []string `json:"code"`

	// expected output, one line per element; Summary may be left out
	Source  []string `json:"source"`
	Summary []string `json:"summary"`
}

// Parse reads a fixture from hujson.
func Parse(b []byte) (f *Fixture, err error) {
	std, err := hujson.Standardize(b)
	if err != nil {
		return nil, fmt.Errorf("standardising fixture: %w", err)
	}

	f = &Fixture{}
	if err = json.Unmarshal(std, f); err != nil {
		return nil, fmt.Errorf("unmarshalling fixture: %w", err)
	}
	return
}

// Load reads the fixture at path, naming it after the file.
func Load(path string) (*Fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading fixture: %w", err)
	}

	f, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Name = strings.TrimSuffix(filepath.Base(path), Ext)
	return f, nil
}

// LoadDir loads every fixture in dir, sorted by name.
func LoadDir(dir string) (fs []*Fixture, err error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*"+Ext))
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)

	for _, p := range paths {
		f, err := Load(p)
		if err != nil {
			return nil, err
		}
		fs = append(fs, f)
	}
	return
}

// ASTHandler is the handler description the tree is built for.
func (f *Fixture) ASTHandler() *ast.Handler {
	return &ast.Handler{
		Name:          f.Handler.Name,
		ArgumentNames: f.Handler.Args,
		GlobalNames:   f.Handler.Globals,
		LocalNames:    f.Handler.Locals,
	}
}

// Bytecode decodes Code, ignoring whitespace.
func (f *Fixture) Bytecode() ([]byte, error) {
	s := strings.Join(strings.Fields(strings.Join(f.Code, " ")), "")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("fixture %s code: %w", f.Name, err)
	}
	return b, nil
}

// Datums converts the literal pool.
func (f *Fixture) Datums() ([]*lingo.Datum, error) {
	ds := make([]*lingo.Datum, len(f.Literals))
	for i, l := range f.Literals {
		d, err := l.Datum()
		if err != nil {
			return nil, fmt.Errorf("fixture %s literal %d: %w", f.Name, i, err)
		}
		ds[i] = d
	}
	return ds, nil
}

func (l Literal) Datum() (*lingo.Datum, error) {
	switch l.Type {
	case "int":
		var i int32
		if err := json.Unmarshal(l.Value, &i); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadLiteral, err)
		}
		return lingo.Int(i), nil
	case "float":
		var fl float64
		if err := json.Unmarshal(l.Value, &fl); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadLiteral, err)
		}
		return lingo.Float(fl), nil
	}

	var s string
	if err := json.Unmarshal(l.Value, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadLiteral, err)
	}

	switch l.Type {
	case "string":
		return lingo.String(s), nil
	case "symbol":
		return lingo.Symbol(s), nil
	case "raw":
		raw, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadLiteral, err)
		}
		return lingo.StringFromRaw(raw), nil
	}
	return nil, fmt.Errorf("%w: unknown type %q", ErrBadLiteral, l.Type)
}

func lines(ls []string) string {
	if len(ls) == 0 {
		return ""
	}
	return strings.Join(ls, "\n") + "\n"
}

// Want is the expected full source.
func (f *Fixture) Want() string {
	return lines(f.Source)
}

// WantSummary is the expected summary source, "" if the fixture has none.
func (f *Fixture) WantSummary() string {
	return lines(f.Summary)
}
