// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"gtodo/internal/service"
)

// FakeStore is an in-memory implementation of service.Store for testing.
// Documents keep insertion order, which stands in for store-native order.
type FakeStore struct {
	mu     sync.RWMutex
	nextID int
	order  map[string][]string                 // collection -> ids in insertion order
	docs   map[string]map[string]service.Fields // collection -> id -> fields

	// Error injection for testing
	FindErr   error
	GetErr    error
	InsertErr error
	UpdateErr error
	DeleteErr error

	// Call counters
	FindCalls   int
	GetCalls    int
	InsertCalls int
	UpdateCalls int
	DeleteCalls int
	CloseCalls  int
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		order: make(map[string][]string),
		docs:  make(map[string]map[string]service.Fields),
	}
}

// Put stores a document under a fixed ID, bypassing counters and injected errors.
func (f *FakeStore) Put(collection, id string, fields service.Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.put(collection, id, fields)
}

// AddUser stores a user document.
func (f *FakeStore) AddUser(id, firstName, lastName, email, password string) {
	f.Put(service.UsersCollection, id, service.Fields{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
		"password":  password,
	})
}

// AddTask stores a task document. Empty priority and due date are left out.
func (f *FakeStore) AddTask(id, userID, title string, status bool, priority, dueDate string) {
	fields := service.Fields{
		"userId": userID,
		"title":  title,
		"status": status,
	}
	if priority != "" {
		fields["priority"] = priority
	}
	if dueDate != "" {
		fields["dueDate"] = dueDate
	}
	f.Put(service.TodosCollection, id, fields)
}

// Doc returns a copy of a stored document's fields.
func (f *FakeStore) Doc(collection, id string) (service.Fields, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	fields, ok := f.docs[collection][id]
	if !ok {
		return nil, false
	}
	return clone(fields), true
}

// Count returns the number of documents in a collection.
func (f *FakeStore) Count(collection string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.docs[collection])
}

// Calls returns the total number of store calls made through the Store interface.
func (f *FakeStore) Calls() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.FindCalls + f.GetCalls + f.InsertCalls + f.UpdateCalls + f.DeleteCalls
}

func (f *FakeStore) put(collection, id string, fields service.Fields) {
	if f.docs[collection] == nil {
		f.docs[collection] = make(map[string]service.Fields)
	}
	if _, exists := f.docs[collection][id]; !exists {
		f.order[collection] = append(f.order[collection], id)
	}
	f.docs[collection][id] = clone(fields)
}

// Find implements service.Store.
func (f *FakeStore) Find(ctx context.Context, collection, field string, value any) ([]service.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FindCalls++
	if f.FindErr != nil {
		return nil, f.FindErr
	}

	var result []service.Document
	for _, id := range f.order[collection] {
		fields := f.docs[collection][id]
		if v, ok := fields[field]; ok && v == value {
			result = append(result, service.Document{ID: id, Fields: clone(fields)})
		}
	}
	return result, nil
}

// Get implements service.Store.
func (f *FakeStore) Get(ctx context.Context, collection, id string) (service.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.GetCalls++
	if f.GetErr != nil {
		return service.Document{}, f.GetErr
	}

	fields, ok := f.docs[collection][id]
	if !ok {
		return service.Document{}, service.ErrDocumentNotFound
	}
	return service.Document{ID: id, Fields: clone(fields)}, nil
}

// Insert implements service.Store.
func (f *FakeStore) Insert(ctx context.Context, collection string, fields service.Fields) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.InsertCalls++
	if f.InsertErr != nil {
		return "", f.InsertErr
	}

	f.nextID++
	id := fmt.Sprintf("%s-%d", collection, f.nextID)
	f.put(collection, id, fields)
	return id, nil
}

// Update implements service.Store.
func (f *FakeStore) Update(ctx context.Context, collection, id string, fields service.Fields) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	if f.UpdateErr != nil {
		return f.UpdateErr
	}

	existing, ok := f.docs[collection][id]
	if !ok {
		return service.ErrDocumentNotFound
	}
	service.MergeFields(existing, clone(fields))
	return nil
}

// Delete implements service.Store.
func (f *FakeStore) Delete(ctx context.Context, collection, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}

	if _, ok := f.docs[collection][id]; !ok {
		return nil
	}
	delete(f.docs[collection], id)
	ids := f.order[collection]
	for i, v := range ids {
		if v == id {
			f.order[collection] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

// Close implements service.Store.
func (f *FakeStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CloseCalls++
	return nil
}

func clone(src map[string]any) service.Fields {
	dst := make(service.Fields, len(src))
	for k, v := range src {
		switch m := v.(type) {
		case service.Fields:
			dst[k] = map[string]any(clone(m))
		case map[string]any:
			dst[k] = map[string]any(clone(m))
		default:
			dst[k] = v
		}
	}
	return dst
}
