package translate

import (
	"fmt"

	"github.com/Heliodex/lingodec/ast"
	"github.com/Heliodex/lingodec/bytecode"
)

// Decompiler goes straight from a handler's bytes to its tree, reusing
// decodes of bytecode it has already seen.
type Decompiler struct {
	d *bytecode.Decoder
}

// NewDecompiler makes a decompiler whose decode cache holds cacheSize
// handlers (bytecode.DefaultCacheSize if cacheSize <= 0).
func NewDecompiler(cacheSize int) (*Decompiler, error) {
	d, err := bytecode.NewDecoder(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Decompiler{d: d}, nil
}

func (c *Decompiler) Decompile(h *ast.Handler, code []byte, s Script) (*ast.AST, error) {
	insts, err := c.d.Decode(code)
	if err != nil {
		return nil, fmt.Errorf("decoding handler %s: %w", h.Name, err)
	}
	return Translate(h, insts, s), nil
}
