package refparse

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/matthewbaird/pagegen/internal/ir"
)

// Cache memoizes Parse by content hash. Callers always receive their own copy.
type Cache struct {
	pages *lru.Cache[string, *ir.Page]
}

// NewCache creates a cache holding up to size parsed pages.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = 1
	}
	c, err := lru.New[string, *ir.Page](size)
	if err != nil {
		return nil, fmt.Errorf("refparse: creating cache: %w", err)
	}
	return &Cache{pages: c}, nil
}

// Parse returns the layout of src, scanning it only on a cache miss.
func (c *Cache) Parse(src string) *ir.Page {
	sum := sha256.Sum256([]byte(src))
	key := hex.EncodeToString(sum[:])
	if p, ok := c.pages.Get(key); ok {
		return p.Clone()
	}
	p := Parse(src)
	c.pages.Add(key, p)
	return p.Clone()
}

// Len reports how many parsed pages are cached.
func (c *Cache) Len() int {
	return c.pages.Len()
}
