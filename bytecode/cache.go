package bytecode

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/crypto/sha3"
)

// DefaultCacheSize is how many decoded handlers a Decoder keeps by default.
const DefaultCacheSize = 256

// Decoder decodes bytecode, remembering recent results by content hash.
// Scripts often repeat handlers byte for byte across casts.
type Decoder struct {
	cache *lru.Cache
}

// NewDecoder makes a decoder caching up to size handlers. A size of 0 or less
// uses DefaultCacheSize.
func NewDecoder(size int) (*Decoder, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating decode cache: %w", err)
	}
	return &Decoder{cache: c}, nil
}

// Decode is like the package-level Decode. The slice returned may be shared
// with other callers decoding the same bytes, so don't modify it.
func (d *Decoder) Decode(code []byte) ([]Instruction, error) {
	hash := sha3.Sum256(code)
	if insts, ok := d.cache.Get(hash); ok {
		return insts.([]Instruction), nil
	}

	insts, err := Decode(code)
	if err != nil {
		return nil, err
	}
	d.cache.Add(hash, insts)
	return insts, nil
}

// Len is how many handlers are cached.
func (d *Decoder) Len() int {
	return d.cache.Len()
}
