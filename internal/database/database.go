package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

type Options struct {
	Driver       string
	DSN          string
	WaitRetries  int
	WaitInterval time.Duration
}

// Store owns the connection pool. It is created once in main and handed to
// the repositories; Close releases it.
type Store struct {
	DB     *sqlx.DB
	driver string
}

// Open connects and blocks until the store answers a ping, retrying
// WaitRetries times WaitInterval apart. Containers start the API before the
// database is ready, so the first attempts are expected to fail.
func Open(ctx context.Context, opts Options) (*Store, error) {
	db, err := sqlx.Open(opts.Driver, opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Driver, err)
	}
	if opts.Driver == DriverSQLite && strings.Contains(opts.DSN, ":memory:") {
		// every new connection would get its own empty database
		db.SetMaxOpenConns(1)
	}

	retries := opts.WaitRetries
	if retries < 1 {
		retries = 1
	}
	for attempt := 1; ; attempt++ {
		err = db.PingContext(ctx)
		if err == nil {
			break
		}
		if attempt >= retries {
			db.Close()
			return nil, fmt.Errorf("could not connect to database after %d attempts: %w", attempt, err)
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("database not ready yet, retrying")
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(opts.WaitInterval):
		}
	}
	log.Info().Str("driver", opts.Driver).Msg("database connected")

	return &Store{DB: db, driver: opts.Driver}, nil
}

func (s *Store) Driver() string { return s.driver }

func (s *Store) Close() error { return s.DB.Close() }

// InTx runs fn inside a transaction, committing when fn returns nil and
// rolling back otherwise.
func (s *Store) InTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// IsUniqueViolation reports whether err comes from a unique constraint on
// either supported driver.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
