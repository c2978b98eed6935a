// Package application implements the response-object adapter: the
// translation step between a completed HTTP exchange and the caller's
// completion code. Each operation turns exactly one exchange into exactly
// one outcome, synchronously, optionally persisting the mapped objects
// inside a single write transaction.
package application

import (
	"encoding/json"

	"github.com/google/uuid"

	"restobject/internal/domain"
)

// MapObject maps the exchange's JSON body into a single object of type T.
//
// The exchange is validated first: a transport error or missing body is
// terminal and no mapping is attempted. The body is then parsed as a JSON
// document (top-level fragments allowed) and optionally narrowed through
// the dotted key path; an unresolvable path makes the value absent, which
// surfaces as a mapping failure. When the context carries a store, the
// whole mapping step runs inside one write transaction that is committed
// or rolled back before this function returns. When the context carries a
// target, it is updated in place and no new object is constructed.
func MapObject[T any](ex *domain.Exchange, keyPath string, mc *domain.MappingContext[T]) domain.Outcome[T] {
	if mc == nil {
		mc = &domain.MappingContext[T]{}
	}
	if fail := checkExchange(ex); fail != nil {
		return domain.Failure[T](fail)
	}

	value, raw, present := extractValue(ex.Body, keyPath)

	tx, fail := beginIfConfigured(mc.Store)
	if fail != nil {
		return domain.Failure[T](fail)
	}
	if tx != nil {
		// Ends the transaction on every exit path; no-op after Commit.
		defer tx.Rollback()
	}

	if !present || value == nil {
		// Absent after key-path resolution, unparseable, or JSON null:
		// the mapper has nothing to construct an object from.
		return domain.Failure[T](domain.MappingError(nil))
	}

	target := mc.Target
	if target == nil {
		target = new(T)
	}

	var err error
	if raw != nil {
		err = domain.DecodeBytes(raw, mc.Options, target)
	} else {
		err = domain.DecodeValue(value, mc.Options, target)
	}
	if err != nil {
		return domain.Failure[T](domain.MappingError(err))
	}

	if tx != nil {
		if fail := saveObject(tx, mc.Collection, mc.ObjectID, target); fail != nil {
			return domain.Failure[T](fail)
		}
		if err := tx.Commit(); err != nil {
			return domain.Failure[T](domain.PersistenceError(err))
		}
	}

	return domain.Success(*target)
}

// MapObjectArray maps the exchange's JSON body into a sequence of T.
// The JSON value selected by the key path must be an array; element order
// is preserved. Element decoding is strict: one element that fails to
// coerce fails the whole sequence. With a store configured, every element
// is written under its own generated id inside the same transaction.
func MapObjectArray[T any](ex *domain.Exchange, keyPath string, mc *domain.MappingContext[T]) domain.Outcome[[]T] {
	if mc == nil {
		mc = &domain.MappingContext[T]{}
	}
	if fail := checkExchange(ex); fail != nil {
		return domain.Failure[[]T](fail)
	}

	value, raw, present := extractValue(ex.Body, keyPath)

	tx, fail := beginIfConfigured(mc.Store)
	if fail != nil {
		return domain.Failure[[]T](fail)
	}
	if tx != nil {
		defer tx.Rollback()
	}

	if !present || value == nil {
		return domain.Failure[[]T](domain.MappingError(nil))
	}

	var objects []T
	var err error
	if raw != nil {
		err = domain.DecodeBytes(raw, mc.Options, &objects)
	} else {
		err = domain.DecodeValue(value, mc.Options, &objects)
	}
	if err != nil {
		return domain.Failure[[]T](domain.MappingError(err))
	}

	if tx != nil {
		for i := range objects {
			if fail := saveObject(tx, mc.Collection, "", &objects[i]); fail != nil {
				return domain.Failure[[]T](fail)
			}
		}
		if err := tx.Commit(); err != nil {
			return domain.Failure[[]T](domain.PersistenceError(err))
		}
	}

	return domain.Success(objects)
}

// checkExchange applies the terminal pre-mapping checks: transport error
// first, then missing body.
func checkExchange(ex *domain.Exchange) *domain.Error {
	if ex == nil {
		return domain.TransportError(nil)
	}
	if ex.Err != nil {
		return domain.TransportError(ex.Err)
	}
	if len(ex.Body) == 0 {
		return domain.NoDataError()
	}
	return nil
}

// extractValue parses the body and resolves the key path. When the path
// is empty the raw body is returned alongside the parsed document so the
// mapper can decode the original bytes directly; after a key-path
// extraction only the subtree value is available.
func extractValue(body []byte, keyPath string) (value any, raw []byte, present bool) {
	doc, ok := domain.ParseDocument(body)
	if !ok {
		return nil, nil, false
	}
	if keyPath == "" {
		return doc, body, true
	}
	v, ok := domain.LookupKeyPath(doc, keyPath)
	if !ok {
		return nil, nil, false
	}
	return v, nil, true
}

// beginIfConfigured opens a write transaction when a store is present.
// Acquisition failure is reported as a persistence outcome, never a
// panic.
func beginIfConfigured(store domain.Store) (domain.Tx, *domain.Error) {
	if store == nil {
		return nil, nil
	}
	tx, err := store.Begin()
	if err != nil {
		return nil, domain.PersistenceError(err)
	}
	return tx, nil
}

// saveObject serializes one mapped object and stages it in the
// transaction. Collection defaults to the type name of T, id to a fresh
// UUID.
func saveObject[T any](tx domain.Tx, collection, id string, obj *T) *domain.Error {
	body, err := json.Marshal(obj)
	if err != nil {
		return domain.PersistenceError(err)
	}
	if collection == "" {
		collection = domain.CollectionFor[T]()
	}
	if id == "" {
		id = uuid.NewString()
	}
	if err := tx.SaveObject(collection, id, body); err != nil {
		return domain.PersistenceError(err)
	}
	return nil
}
