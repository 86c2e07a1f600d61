package translate

import (
	"fmt"

	"github.com/Heliodex/lingodec/lingo"
)

// Script resolves the ids bytecode operands refer to. Lookups never fail,
// a miss gives a placeholder.
type Script interface {
	Name(id int32) string
	Literal(id int32) *lingo.Datum
	HandlerName(id int32) string
}

// Pool is a Script backed by plain slices, indexed by id.
type Pool struct {
	Names    []string
	Literals []*lingo.Datum
	Handlers []string
}

func (p *Pool) Name(id int32) string {
	if id < 0 || int(id) >= len(p.Names) {
		return fmt.Sprintf("UNKNOWN_NAME_%d", id)
	}
	return p.Names[id]
}

func (p *Pool) Literal(id int32) *lingo.Datum {
	if id < 0 || int(id) >= len(p.Literals) || p.Literals[id] == nil {
		return lingo.Void()
	}
	return p.Literals[id]
}

func (p *Pool) HandlerName(id int32) string {
	if id < 0 || int(id) >= len(p.Handlers) {
		return fmt.Sprintf("UNKNOWN_HANDLER_%d", id)
	}
	return p.Handlers[id]
}
