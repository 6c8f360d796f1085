package reconcile

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// schemaEntry is one loaded table, successful or not.
type schemaEntry struct {
	columns map[string]ColumnDescriptor
	err     error
	built   time.Time
}

// SchemaCache memoises SchemaSource lookups per (owner, table).
//
// Failed loads are cached as well, so a table that cannot be read produces the
// same error for every mapping that references it and is never retried.
type SchemaCache struct {
	source SchemaSource
	ttl    time.Duration

	mu      sync.RWMutex
	entries map[string]*schemaEntry
	sf      singleflight.Group
}

// NewSchemaCache wraps source. A zero ttl keeps entries for the cache's lifetime.
func NewSchemaCache(source SchemaSource, ttl time.Duration) *SchemaCache {
	return &SchemaCache{
		source:  source,
		ttl:     ttl,
		entries: make(map[string]*schemaEntry),
	}
}

func schemaKey(owner, table string) string {
	return strings.ToUpper(strings.TrimSpace(owner)) + "." + strings.ToUpper(strings.TrimSpace(table))
}

func (c *SchemaCache) expired(e *schemaEntry) bool {
	return c.ttl > 0 && time.Since(e.built) > c.ttl
}

// Columns returns the columns of owner.table, loading them at most once even
// when called concurrently.
func (c *SchemaCache) Columns(ctx context.Context, owner, table string) (map[string]ColumnDescriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := schemaKey(owner, table)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && !c.expired(entry) {
		return entry.columns, entry.err
	}

	ch := c.sf.DoChan(key, func() (interface{}, error) {
		c.mu.RLock()
		entry, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && !c.expired(entry) {
			return entry, nil
		}

		// Shared by every waiter, detached from the first caller's cancellation.
		cols, err := c.source.LoadColumns(context.WithoutCancel(ctx), owner, table)
		entry = &schemaEntry{columns: cols, err: err, built: time.Now()}

		// Cancellation is not a property of the table, keep it out of the cache.
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			c.mu.Lock()
			c.entries[key] = entry
			c.mu.Unlock()
		}
		return entry, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		entry = res.Val.(*schemaEntry)
		return entry.columns, entry.err
	}
}

// Invalidate drops every cached table.
func (c *SchemaCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]*schemaEntry)
	c.mu.Unlock()
}

// Len returns the number of cached tables.
func (c *SchemaCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
