package storage

import (
	"context"
	"encoding/json"
	"reflect"
)

// Fixed document keys. Each holds one JSON array, mirroring the two
// collections the tracker persists.
const (
	KeyExpenses   = "expenses"
	KeyCategories = "categories"
)

type NotFoundError struct{}

func (e *NotFoundError) Error() string {
	return "record not found"
}

// Store is a key-value document store. Each key holds one JSON-encoded
// sequence of records.
//
// Load decodes the value stored under key into v. An absent key, a value that
// is not valid JSON, or a value that is not a sequence must leave v untouched
// and return nil: corrupt storage degrades to "no data", it never surfaces to
// the caller.
//
// Save serializes v and replaces any prior value under key. The underlying
// store is assumed atomic per key.
type Store interface {
	Load(ctx context.Context, key string, v any) error
	Save(ctx context.Context, key string, v any) error
	Close() error
}

// Decode unmarshals data into v, assigning only when the whole payload
// decodes. A partial decode of a corrupt payload must not leak into v, so the
// unmarshal goes through a scratch value first. v must be a non-nil pointer.
func Decode(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	scratch := reflect.New(rv.Type().Elem())

	if err := json.Unmarshal(data, scratch.Interface()); err != nil {
		return err
	}

	rv.Elem().Set(scratch.Elem())
	return nil
}
