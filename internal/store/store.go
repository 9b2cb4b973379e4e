// Package store reads page records from PostgreSQL.
//
// Each page reads the table named after its key. Columns are taken from the
// record type's `db` struct tags and rows are scanned by name, so a table may
// carry extra columns the page does not display.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"reflect"
	"strings"

	"github.com/JonMunkholm/erpgrid/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgxpool.Pool used by sources.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Open connects a pool using cfg and verifies it with a ping.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("connected to database", "name", databaseName(cfg.URL), "max_conns", cfg.MaxConns)
	return pool, nil
}

func databaseName(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}

// PGSource loads every row of one table into records of type T.
type PGSource[T any] struct {
	db    Querier
	table string
	sql   string
}

// NewPGSource returns a source reading table through db.
// Panics if T has no `db` tagged fields.
func NewPGSource[T any](db Querier, table string) *PGSource[T] {
	cols := Columns[T]()
	if len(cols) == 0 {
		panic(fmt.Sprintf("store: %T has no db-tagged fields", *new(T)))
	}
	return &PGSource[T]{db: db, table: table, sql: SelectSQL(table, cols)}
}

// SQL returns the query the source runs.
func (s *PGSource[T]) SQL() string { return s.sql }

// Load implements core.Source.
func (s *PGSource[T]) Load(ctx context.Context) ([]T, error) {
	rows, err := s.db.Query(ctx, s.sql)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table, err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", s.table, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Columns returns the `db` tag names of T's exported fields in declaration
// order. Fields tagged "-" or without a tag are skipped.
func Columns[T any]() []string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var cols []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("db"), ",")
		if name == "" || name == "-" {
			continue
		}
		cols = append(cols, name)
	}
	return cols
}

// SelectSQL builds a SELECT of cols from table with every identifier quoted.
func SelectSQL(table string, cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = pgx.Identifier{c}.Sanitize()
	}
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(quoted, ", "), pgx.Identifier{table}.Sanitize())
}
