package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jbweber/homelab/campus/internal/domain"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// table maps an entity onto a SQLite table whose primary key is an
// autoincrement "id" column
type table[T any] struct {
	name    string
	kind    string   // used in error messages
	columns []string // every column except id, in the order values returns them

	// scan reads id followed by columns
	scan func(rowScanner) (T, error)
	// values returns the column values in the order of columns
	values func(T) []any
}

// SQLRepository provides a generic Repository implementation over a single
// table. Per-entity constructors supply the column mapping.
type SQLRepository[T domain.Entity[T]] struct {
	stmts *StatementCache
	table table[T]

	selectAll  string
	selectByID string
	insert     string
	update     string
	deleteByID string
}

func newSQLRepository[T domain.Entity[T]](stmts *StatementCache, t table[T]) *SQLRepository[T] {
	cols := strings.Join(t.columns, ", ")
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.columns)), ", ")
	assignments := make([]string, len(t.columns))
	for i, c := range t.columns {
		assignments[i] = c + " = ?"
	}

	return &SQLRepository[T]{
		stmts:      stmts,
		table:      t,
		selectAll:  fmt.Sprintf("SELECT id, %s FROM %s ORDER BY id ASC", cols, t.name),
		selectByID: fmt.Sprintf("SELECT id, %s FROM %s WHERE id = ?", cols, t.name),
		insert:     fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.name, cols, placeholders),
		update:     fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", t.name, strings.Join(assignments, ", ")),
		deleteByID: fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.name),
	}
}

// Save creates or updates an entity
func (r *SQLRepository[T]) Save(ctx context.Context, entity T) (T, error) {
	if entity.Key() == 0 {
		return r.create(ctx, entity)
	}
	return r.replace(ctx, entity)
}

// create inserts a new row and returns the entity with its assigned id
func (r *SQLRepository[T]) create(ctx context.Context, entity T) (T, error) {
	var zero T
	stmt, err := r.stmts.Prepare(ctx, r.insert)
	if err != nil {
		return zero, fmt.Errorf("failed to prepare %s insert: %w", r.table.kind, err)
	}

	res, err := stmt.ExecContext(ctx, r.table.values(entity)...)
	if err != nil {
		return zero, fmt.Errorf("failed to create %s: %w", r.table.kind, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return zero, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	return entity.WithKey(id), nil
}

// replace overwrites every column of the row with the entity's id. A row
// deleted concurrently is not resurrected; the update affects nothing.
func (r *SQLRepository[T]) replace(ctx context.Context, entity T) (T, error) {
	var zero T
	stmt, err := r.stmts.Prepare(ctx, r.update)
	if err != nil {
		return zero, fmt.Errorf("failed to prepare %s update: %w", r.table.kind, err)
	}

	args := append(r.table.values(entity), entity.Key())
	if _, err := stmt.ExecContext(ctx, args...); err != nil {
		return zero, fmt.Errorf("failed to update %s: %w", r.table.kind, err)
	}
	return entity, nil
}

// FindByID retrieves an entity by its ID
func (r *SQLRepository[T]) FindByID(ctx context.Context, id int64) (T, error) {
	var zero T
	stmt, err := r.stmts.Prepare(ctx, r.selectByID)
	if err != nil {
		return zero, fmt.Errorf("failed to prepare %s lookup: %w", r.table.kind, err)
	}

	entity, err := r.table.scan(stmt.QueryRowContext(ctx, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, fmt.Errorf("%s with ID %d: %w", r.table.kind, id, ErrNotFound)
		}
		return zero, fmt.Errorf("failed to find %s: %w", r.table.kind, err)
	}
	return entity, nil
}

// FindAll retrieves all entities ordered by id
func (r *SQLRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	stmt, err := r.stmts.Prepare(ctx, r.selectAll)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare %s listing: %w", r.table.kind, err)
	}

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.table.kind, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Warn("failed to close rows", "error", err)
		}
	}()

	entities := make([]T, 0)
	for rows.Next() {
		entity, err := r.table.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", r.table.kind, err)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.table.kind, err)
	}
	return entities, nil
}

// DeleteByID deletes an entity by its ID
func (r *SQLRepository[T]) DeleteByID(ctx context.Context, id int64) error {
	stmt, err := r.stmts.Prepare(ctx, r.deleteByID)
	if err != nil {
		return fmt.Errorf("failed to prepare %s delete: %w", r.table.kind, err)
	}

	res, err := stmt.ExecContext(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.table.kind, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.table.kind, err)
	}
	if n == 0 {
		return fmt.Errorf("%s with ID %d: %w", r.table.kind, id, ErrNotFound)
	}
	return nil
}
