package application

import (
	"context"

	"restobject/internal/domain"
	"restobject/internal/infrastructure"
)

// OnObject attaches single-object mapping to a completed exchange and
// delivers the outcome through the completion callback. The callback is
// invoked exactly once, synchronously, on the calling goroutine.
func OnObject[T any](ex *domain.Exchange, keyPath string, mc *domain.MappingContext[T], completion func(domain.Outcome[T])) {
	completion(MapObject(ex, keyPath, mc))
}

// OnObjectArray attaches array mapping to a completed exchange and
// delivers the outcome through the completion callback, exactly once.
func OnObjectArray[T any](ex *domain.Exchange, keyPath string, mc *domain.MappingContext[T], completion func(domain.Outcome[[]T])) {
	completion(MapObjectArray(ex, keyPath, mc))
}

// GetObject issues a GET request through the client and delivers the
// mapped object through the completion callback. The request runs on its
// own goroutine; the completion is invoked from that goroutine exactly
// once, after any persistence transaction has been closed.
func GetObject[T any](ctx context.Context, client *infrastructure.Client, url, keyPath string, mc *domain.MappingContext[T], completion func(domain.Outcome[T])) {
	go func() {
		completion(MapObject(client.Get(ctx, url), keyPath, mc))
	}()
}

// GetObjectArray issues a GET request through the client and delivers the
// mapped sequence through the completion callback, exactly once.
func GetObjectArray[T any](ctx context.Context, client *infrastructure.Client, url, keyPath string, mc *domain.MappingContext[T], completion func(domain.Outcome[[]T])) {
	go func() {
		completion(MapObjectArray(client.Get(ctx, url), keyPath, mc))
	}()
}
