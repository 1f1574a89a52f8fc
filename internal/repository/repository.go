package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/database"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

// Repos maps domain records to rows. Queries are written with '?'
// placeholders and rebound for the active driver.
type Repos struct {
	q sqlx.ExtContext
}

func New(db *sqlx.DB) *Repos { return &Repos{q: db} }

// WithTx returns a copy of the repositories bound to tx.
func (r *Repos) WithTx(tx *sqlx.Tx) *Repos { return &Repos{q: tx} }

func (r *Repos) get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return sqlx.GetContext(ctx, r.q, dest, r.q.Rebind(query), args...)
}

func (r *Repos) selectAll(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return sqlx.SelectContext(ctx, r.q, dest, r.q.Rebind(query), args...)
}

func (r *Repos) exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return r.q.ExecContext(ctx, r.q.Rebind(query), args...)
}

// insert runs an INSERT ... RETURNING id statement.
func (r *Repos) insert(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var id int64
	err := r.q.QueryRowxContext(ctx, r.q.Rebind(query+" RETURNING id"), args...).Scan(&id)
	if database.IsUniqueViolation(err) {
		return 0, fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	return id, err
}

func notFound(err error, what string, id interface{}) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", what, id, domain.ErrNotFound)
	}
	return err
}

// mustAffect turns a zero-row update into ErrNotFound.
func mustAffect(res sql.Result, err error, what string, id int64) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, domain.ErrNotFound)
	}
	return nil
}
