package repository

import (
	"context"
	"database/sql"
	"errors"
	"sync"
)

// ErrStatementsClosed is returned by Prepare once the repositories are closed
var ErrStatementsClosed = errors.New("statement cache closed")

// StatementCache holds one prepared statement per SQL text. All five
// resource tables share a cache, so each query is prepared once per process.
type StatementCache struct {
	db *sql.DB

	mu     sync.RWMutex
	byText map[string]*sql.Stmt
	closed bool
}

func NewStatementCache(db *sql.DB) *StatementCache {
	return &StatementCache{db: db, byText: make(map[string]*sql.Stmt)}
}

// Prepare returns the cached statement for query, preparing it on first use
func (c *StatementCache) Prepare(ctx context.Context, query string) (*sql.Stmt, error) {
	c.mu.RLock()
	stmt, ok := c.byText[query]
	closed := c.closed
	c.mu.RUnlock()
	if ok {
		return stmt, nil
	}
	if closed {
		return nil, ErrStatementsClosed
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrStatementsClosed
	}
	if stmt, ok := c.byText[query]; ok {
		return stmt, nil
	}

	stmt, err := c.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	c.byText[query] = stmt
	return stmt, nil
}

// Close releases every statement. Later calls to Prepare fail.
func (c *StatementCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	errs := make([]error, 0, len(c.byText))
	for query, stmt := range c.byText {
		errs = append(errs, stmt.Close())
		delete(c.byText, query)
	}
	c.closed = true
	return errors.Join(errs...)
}

func (c *StatementCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byText)
}
