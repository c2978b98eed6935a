// Package infrastructure provides the concrete collaborators the adapter
// glues together: the HTTP client producing exchanges and the SQLite
// object store mapped objects are persisted into.
package infrastructure

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"restobject/internal/domain"
)

// Query constants
const (
	objectsSchema = `
		CREATE TABLE IF NOT EXISTS objects (
			id         TEXT PRIMARY KEY,
			collection TEXT NOT NULL,
			body       TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`

	objectsCollectionIndex = `
		CREATE INDEX IF NOT EXISTS idx_objects_collection ON objects(collection)`

	objectUpsertQuery = `
		INSERT INTO objects (id, collection, body, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET collection = excluded.collection, body = excluded.body`

	objectSelectQuery = `
		SELECT body FROM objects WHERE collection = ? AND id = ?`

	objectCountQuery = `
		SELECT COUNT(*) FROM objects WHERE collection = ?`
)

// SQLiteStore implements the domain.Store interface with a SQLite backend.
// Mapped objects are kept as JSON documents keyed by collection and id.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewSQLiteStore creates a store around an existing database handle.
// The schema is not touched; use OpenSQLiteStore to open and migrate in
// one step.
func NewSQLiteStore(db *sql.DB, logger *zap.SugaredLogger) *SQLiteStore {
	return &SQLiteStore{
		db:     db,
		logger: logger,
	}
}

// OpenSQLiteStore opens (or creates) the database at path and ensures the
// objects schema exists. busyTimeoutMS > 0 sets the SQLite busy timeout
// for concurrent writers.
func OpenSQLiteStore(path string, busyTimeoutMS int, logger *zap.SugaredLogger) (*SQLiteStore, error) {
	dsn := path
	if busyTimeoutMS > 0 {
		dsn = fmt.Sprintf("%s?_busy_timeout=%d", path, busyTimeoutMS)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open object store")
	}

	// Every pool connection to :memory: opens its own empty database, so
	// an in-memory store must hold the pool to a single connection or
	// concurrent transactions would not see the migrated schema.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	store := NewSQLiteStore(db, logger)
	if err := store.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Migrate ensures the objects table and its indexes exist.
func (s *SQLiteStore) Migrate() error {
	if _, err := s.db.Exec(objectsSchema); err != nil {
		return errors.Wrap(err, "failed to create objects table")
	}
	if _, err := s.db.Exec(objectsCollectionIndex); err != nil {
		return errors.Wrap(err, "failed to create collection index")
	}
	return nil
}

// Begin opens a write transaction. Part of the domain.Store interface.
func (s *SQLiteStore) Begin() (domain.Tx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin write transaction")
	}
	return &sqliteTx{tx: tx, logger: s.logger}, nil
}

// Count returns the number of objects stored in a collection.
func (s *SQLiteStore) Count(collection string) (int, error) {
	var n int
	if err := s.db.QueryRow(objectCountQuery, collection).Scan(&n); err != nil {
		return 0, errors.Wrapf(err, "failed to count objects in %q", collection)
	}
	return n, nil
}

// GetObject returns the stored JSON body of one object, or an error when
// the object does not exist.
func (s *SQLiteStore) GetObject(collection, id string) ([]byte, error) {
	var body string
	err := s.db.QueryRow(objectSelectQuery, collection, id).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, errors.Newf("object %s/%s not found", collection, id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load object %s/%s", collection, id)
	}
	return []byte(body), nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// sqliteTx adapts *sql.Tx to the domain.Tx interface.
type sqliteTx struct {
	tx     *sql.Tx
	logger *zap.SugaredLogger
	done   bool
}

// SaveObject upserts one serialized object inside the transaction.
func (t *sqliteTx) SaveObject(collection, id string, body []byte) error {
	if _, err := t.tx.Exec(objectUpsertQuery, id, collection, string(body), time.Now().UTC()); err != nil {
		return errors.Wrapf(err, "failed to save object %s/%s", collection, id)
	}
	if t.logger != nil {
		t.logger.Debugw("object staged", "collection", collection, "id", id, "bytes", len(body))
	}
	return nil
}

// Commit makes the transaction's writes durable.
func (t *sqliteTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit write transaction")
	}
	t.done = true
	return nil
}

// Rollback discards the transaction's writes. After a Commit it is a
// no-op, so callers may defer it unconditionally.
func (t *sqliteTx) Rollback() error {
	if t.done {
		return nil
	}
	if err := t.tx.Rollback(); err != nil && err != sql.ErrTxDone {
		return errors.Wrap(err, "failed to roll back write transaction")
	}
	return nil
}
