package service

import (
	"context"
	"errors"
)

// ErrDocumentNotFound is returned by a Store when the addressed document does
// not exist.
var ErrDocumentNotFound = errors.New("document not found")

// Fields holds the field values of a document.
// Values are strings, bools, numbers, nil, or nested Fields/map[string]any.
type Fields map[string]any

// String returns the string value of key, or "" when absent or not a string.
func (f Fields) String(key string) string {
	s, _ := f[key].(string)
	return s
}

// Bool returns the bool value of key, or false when absent or not a bool.
func (f Fields) Bool(key string) bool {
	b, _ := f[key].(bool)
	return b
}

// Document is a stored document: its store-assigned ID and its fields.
type Document struct {
	ID     string
	Fields Fields
}

// Store is the document database contract the data-access layer runs on.
// Backends never see domain types; the service translates documents to
// records and store failures to DataAccessErrors.
type Store interface {
	// Find returns all documents in collection whose field equals value,
	// in store-native order.
	Find(ctx context.Context, collection, field string, value any) ([]Document, error)

	// Get returns a single document.
	// Returns ErrDocumentNotFound if it does not exist.
	Get(ctx context.Context, collection, id string) (Document, error)

	// Insert creates a document and returns its store-assigned ID.
	Insert(ctx context.Context, collection string, fields Fields) (string, error)

	// Update merges fields into an existing document. Nested maps are merged
	// recursively; unsupplied fields are left untouched.
	// Returns ErrDocumentNotFound if it does not exist.
	Update(ctx context.Context, collection, id string, fields Fields) error

	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, id string) error

	// Close releases backend resources.
	Close() error
}

// MergeFields merges src into dst the way Store.Update does: nested maps are
// merged key by key, everything else is replaced. It is meant for Store
// implementations that keep whole documents.
func MergeFields(dst, src map[string]any) {
	for k, v := range src {
		sv, ok := asMap(v)
		if !ok {
			dst[k] = v
			continue
		}
		dv, ok := asMap(dst[k])
		if !ok {
			dv = map[string]any{}
		}
		MergeFields(dv, sv)
		dst[k] = dv
	}
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Fields:
		return map[string]any(m), true
	case map[string]any:
		return m, true
	}
	return nil, false
}
