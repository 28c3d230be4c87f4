package displayfmt

import "sync"

type formatterKey struct {
	locale    string
	precision int
}

// formatterCache memoizes number formatters by locale and precision so context
// recomputation does not rebuild printers for settings that did not change.
type formatterCache struct {
	mu      sync.RWMutex
	entries map[formatterKey]NumberFormatter
}

func newFormatterCache() *formatterCache {
	return &formatterCache{entries: make(map[formatterKey]NumberFormatter)}
}

// Formatter returns the cached formatter for locale/precision, building it on first use.
func (c *formatterCache) Formatter(locale string, precision int) NumberFormatter {
	key := formatterKey{locale: normalizeLocale(locale), precision: clampPrecision(precision)}

	c.mu.RLock()
	if fn, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		return fn
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries == nil {
		c.entries = make(map[formatterKey]NumberFormatter)
	} else if fn, ok := c.entries[key]; ok {
		return fn
	}

	fn := LocaleFormatter(key.locale, key.precision)
	c.entries[key] = fn
	return fn
}

// Len reports how many formatters are cached.
func (c *formatterCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset drops every cached formatter.
func (c *formatterCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}
