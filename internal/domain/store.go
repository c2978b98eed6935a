package domain

// Store is the persistence seam the adapter writes mapped objects
// through. Implementations wrap an embedded database; the adapter only
// ever touches it through one short-lived write transaction per mapping
// operation.
type Store interface {
	// Begin opens a write transaction. The caller must end it with
	// exactly one Commit or Rollback.
	Begin() (Tx, error)
}

// Tx is a single write transaction against a Store.
type Tx interface {
	// SaveObject writes one serialized object into a collection under
	// the given id, replacing any existing object with that id.
	SaveObject(collection, id string, body []byte) error

	// Commit makes the transaction's writes durable.
	Commit() error

	// Rollback discards the transaction's writes. Safe to call after
	// Commit; it then has no effect.
	Rollback() error
}
