package folionews

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DefaultTTL is how long a cached article list stays fresh before the
// pipeline recomputes it.
const DefaultTTL = 4 * time.Hour

// CacheEntry is the per-symbol unit of the news cache: the article list for
// one symbol and the moment it was last recomputed.
//
// Timestamp reflects computation time, never read time. An entry is replaced
// wholesale by Put; it is never partially updated.
type CacheEntry struct {
	Symbol    string
	Timestamp time.Time
	Articles  []Article
}

// Fresh reports whether the entry is still within the freshness window.
func (e CacheEntry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.Timestamp) < ttl
}

// NewsCache maps portfolio symbols to their cached article lists.
//
// It is owned by a single pipeline batch at a time: load it once at batch
// start, save it once at batch end. There is no locking; concurrent batches
// over the same backing file are not supported.
type NewsCache struct {
	entries map[string]CacheEntry
}

// NewNewsCache returns an empty cache.
func NewNewsCache() *NewsCache {
	return &NewsCache{entries: make(map[string]CacheEntry)}
}

// Get returns the entry for symbol, if any. The entry may be stale; checking
// freshness is the caller's decision.
func (c *NewsCache) Get(symbol string) (CacheEntry, bool) {
	e, ok := c.entries[symbol]
	return e, ok
}

// Put records a freshly computed article list for symbol, replacing any
// previous entry and stamping it with the current time.
func (c *NewsCache) Put(symbol string, articles []Article) CacheEntry {
	e := CacheEntry{Symbol: symbol, Timestamp: time.Now(), Articles: articles}
	c.entries[symbol] = e
	return e
}

// Len returns the number of cached symbols.
func (c *NewsCache) Len() int { return len(c.entries) }

// Symbols returns the cached symbols in alphabetical order.
func (c *NewsCache) Symbols() []string {
	symbols := make([]string, 0, len(c.entries))
	for s := range c.entries {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// The cache is persisted as a JSONL file, one line per symbol entry. The
// format is human readable and diffs line by line, so it can live in a
// private git repo next to the holdings export.

// jentry is the persisted form of a CacheEntry.
type jentry struct {
	Symbol    string    `json:"symbol"`
	Timestamp time.Time `json:"timestamp"`
	Articles  []Article `json:"articles"`
}

// DecodeNewsCache reads a cache from its JSONL representation.
func DecodeNewsCache(r io.Reader) (*NewsCache, error) {
	c := NewNewsCache()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		var je jentry
		if err := json.Unmarshal([]byte(line), &je); err != nil {
			return nil, fmt.Errorf("cache parse error line %d: %w", i, err)
		}
		if je.Symbol == "" {
			return nil, fmt.Errorf("cache parse error line %d: missing symbol", i)
		}
		c.entries[je.Symbol] = CacheEntry(je)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cache read error: %w", err)
	}
	return c, nil
}

// EncodeNewsCache writes the cache in its JSONL representation, one symbol
// per line in alphabetical order.
func EncodeNewsCache(w io.Writer, c *NewsCache) error {
	for _, symbol := range c.Symbols() {
		e := c.entries[symbol]
		var jw jsonObjectWriter
		jw.Append("symbol", e.Symbol)
		jw.Append("timestamp", e.Timestamp)
		jw.Append("articles", e.Articles)
		data, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal cache entry %q: %w", symbol, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write cache entry %q: %w", symbol, err)
		}
	}
	return nil
}

// LoadNewsCache reads the cache file at path.
//
// Callers are expected to treat any error (missing or corrupt file) as an
// empty cache: the pipeline then simply runs fresh for all symbols.
func LoadNewsCache(path string) (*NewsCache, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open cache file %q: %w", path, err)
	}
	defer f.Close()
	return DecodeNewsCache(f)
}

// SaveNewsCache writes the whole cache to the file at path.
func SaveNewsCache(path string, c *NewsCache) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create cache directory for %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot open cache file %q for writing: %w", path, err)
	}
	defer f.Close()
	return EncodeNewsCache(f, c)
}
