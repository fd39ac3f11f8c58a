// Package store persists named Bitmaps as fastdump blobs across a SQL
// backend whose dialect the caller names explicitly when opening it.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"bitset"
	"bitset/internal/errs"
)

// Dialect identifies which SQL driver and placeholder style a DSN targets.
type Dialect string

const (
	DialectSQLite    Dialect = "sqlite"
	DialectSQLiteCGO Dialect = "sqlite3-cgo"
	DialectMySQL     Dialect = "mysql"
	DialectPostgres  Dialect = "postgres"
	DialectMSSQL     Dialect = "sqlserver"
)

// Store wraps a *sql.DB holding named bitset.Bitmap dumps.
type Store struct {
	db      *sql.DB
	dialect Dialect
	log     *slog.Logger
}

// Open connects to dialect at dsn and ensures the bitmaps table exists.
// modernc.org/sqlite (pure Go, no cgo) backs DialectSQLite; mattn/go-sqlite3
// remains wired as the cgo alternative under DialectSQLiteCGO.
func Open(ctx context.Context, dialect Dialect, dsn string) (*Store, error) {
	driverName, err := driverFor(dialect)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, errs.Wrap(errs.EncodingError, err, "store: open %s", dialect)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, errs.Wrap(errs.EncodingError, err, "store: ping %s", dialect)
	}
	s := &Store{db: db, dialect: dialect, log: slog.Default()}
	if err := s.migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func driverFor(dialect Dialect) (string, error) {
	switch dialect {
	case DialectSQLite:
		return "sqlite", nil
	case DialectSQLiteCGO:
		return "sqlite3", nil
	case DialectMySQL:
		return "mysql", nil
	case DialectPostgres:
		return "postgres", nil
	case DialectMSSQL:
		return "sqlserver", nil
	default:
		return "", errs.New(errs.TypeMismatch, "store: unknown dialect %q", dialect)
	}
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS bitmaps (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		word_bits INTEGER NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`)
	if err != nil {
		return errs.Wrap(errs.EncodingError, err, "store: migrate schema")
	}
	return nil
}

// Save writes b's fastdump under name, overwriting any previous value.
func (s *Store) Save(ctx context.Context, name string, b *bitset.Bitmap) error {
	payload := b.FastDump()
	query := s.rebind(s.upsertQuery())
	_, err := s.db.ExecContext(ctx, query, name, payload, b.GetWordBitSize(), time.Now().UTC())
	if err != nil {
		return errs.Wrap(errs.EncodingError, err, "store: save %q", name)
	}
	s.log.Info("saved bitmap", "name", name, "bytes", len(payload))
	return nil
}

// Load reads the Bitmap stored under name.
func (s *Store) Load(ctx context.Context, name string) (*bitset.Bitmap, error) {
	query := s.rebind(`SELECT payload FROM bitmaps WHERE name = ?`)
	row := s.db.QueryRowContext(ctx, query, name)
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.New(errs.MissingElement, "store: no bitmap named %q", name)
		}
		return nil, errs.Wrap(errs.EncodingError, err, "store: load %q", name)
	}
	return bitset.NewFromBytes(payload)
}

// Delete removes the Bitmap stored under name. Never fails if absent.
func (s *Store) Delete(ctx context.Context, name string) error {
	query := s.rebind(`DELETE FROM bitmaps WHERE name = ?`)
	_, err := s.db.ExecContext(ctx, query, name)
	if err != nil {
		return errs.Wrap(errs.EncodingError, err, "store: delete %q", name)
	}
	return nil
}

// List returns every stored name, most recently updated first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM bitmaps ORDER BY updated_at DESC`)
	if err != nil {
		return nil, errs.Wrap(errs.EncodingError, err, "store: list")
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errs.Wrap(errs.EncodingError, err, "store: scan name")
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// upsertQuery returns the dialect-appropriate insert-or-update statement.
// MySQL has no ON CONFLICT clause, so it uses ON DUPLICATE KEY UPDATE; SQL
// Server has neither and requires a MERGE statement; sqlite and postgres
// both accept standard ON CONFLICT.
func (s *Store) upsertQuery() string {
	switch s.dialect {
	case DialectMySQL:
		return `INSERT INTO bitmaps (name, payload, word_bits, updated_at) VALUES (?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE payload = VALUES(payload), word_bits = VALUES(word_bits), updated_at = VALUES(updated_at)`
	case DialectMSSQL:
		return `MERGE INTO bitmaps AS target
			USING (VALUES (?, ?, ?, ?)) AS source (name, payload, word_bits, updated_at)
			ON target.name = source.name
			WHEN MATCHED THEN UPDATE SET payload = source.payload, word_bits = source.word_bits, updated_at = source.updated_at
			WHEN NOT MATCHED THEN INSERT (name, payload, word_bits, updated_at)
				VALUES (source.name, source.payload, source.word_bits, source.updated_at);`
	default:
		return `INSERT INTO bitmaps (name, payload, word_bits, updated_at) VALUES (?, ?, ?, ?)
			ON CONFLICT (name) DO UPDATE SET payload = excluded.payload, word_bits = excluded.word_bits, updated_at = excluded.updated_at`
	}
}

// rebind swaps '?' placeholders for postgres' $N style; every other
// dialect wired here accepts '?' natively.
func (s *Store) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}
	out := make([]byte, 0, len(query)+8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			out = append(out, []byte(fmt.Sprintf("$%d", n))...)
			continue
		}
		out = append(out, query[i])
	}
	return string(out)
}
