package flow

import (
	"strconv"
	"strings"
	"sync"

	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
)

type cacheKey struct {
	direction   Direction
	constraints string
	area        geometry.Region
	flex        Flex
	spacing     int
	margin      int
}

// Cache memoizes constraint solves so a stack whose children did not change
// is not re-solved every frame. It is safe for concurrent use. Callers own
// invalidation: call Invalidate when the viewport is resized.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey][]geometry.Region
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey][]geometry.Region)}
}

// Get returns a copy of a cached solve, or nil.
func (c *Cache) Get(l *Layout, area geometry.Region) []geometry.Region {
	key := makeKey(l, area)
	c.mu.RLock()
	defer c.mu.RUnlock()
	regions, ok := c.entries[key]
	if !ok {
		return nil
	}
	return append([]geometry.Region(nil), regions...)
}

// Put stores a solve.
func (c *Cache) Put(l *Layout, area geometry.Region, regions []geometry.Region) {
	key := makeKey(l, area)
	cp := append([]geometry.Region(nil), regions...)
	c.mu.Lock()
	c.entries[key] = cp
	c.mu.Unlock()
}

// Invalidate drops every entry.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[cacheKey][]geometry.Region)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Split returns the cached solve of l over area, solving and storing it on
// a miss. A nil cache always solves.
func (c *Cache) Split(l *Layout, area geometry.Region) []geometry.Region {
	if c == nil {
		return l.Split(area)
	}
	if cached := c.Get(l, area); cached != nil {
		return cached
	}
	regions := l.Split(area)
	c.Put(l, area, regions)
	return regions
}

func makeKey(l *Layout, area geometry.Region) cacheKey {
	return cacheKey{
		direction:   l.direction,
		constraints: encodeConstraints(l.constraints),
		area:        area,
		flex:        l.flex,
		spacing:     l.spacing,
		margin:      l.margin,
	}
}

// encodeConstraints serializes constraints deterministically for use in a
// map key.
func encodeConstraints(cs []Constraint) string {
	var b strings.Builder
	b.Grow(len(cs) * 6)
	for i, c := range cs {
		if i > 0 {
			b.WriteByte('|')
		}
		switch v := c.(type) {
		case Length:
			b.WriteByte('L')
			b.WriteString(strconv.Itoa(v.Value))
		case Percentage:
			b.WriteByte('P')
			b.WriteString(strconv.Itoa(v.Value))
		case Ratio:
			b.WriteByte('R')
			b.WriteString(strconv.Itoa(v.Num))
			b.WriteByte('/')
			b.WriteString(strconv.Itoa(v.Den))
		case Min:
			b.WriteByte('m')
			b.WriteString(strconv.Itoa(v.Value))
		case Max:
			b.WriteByte('M')
			b.WriteString(strconv.Itoa(v.Value))
		case Fill:
			b.WriteByte('F')
			b.WriteString(strconv.Itoa(v.Weight))
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}
