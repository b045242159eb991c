package mocks

import (
	"context"
	"os"
	"sync"
)

// WriteCall records a single Write invocation
type WriteCall struct {
	Path string
	Data []byte
	Perm os.FileMode
}

// MockAssetStore is an in-memory implementation of the AssetStore interface for testing
type MockAssetStore struct {
	mu     sync.Mutex
	files  map[string][]byte
	writes []WriteCall
	reads  []string

	// Errors to return, keyed by path
	ReadErrors  map[string]error
	WriteErrors map[string]error
}

// NewMockAssetStore creates a new mock store
func NewMockAssetStore() *MockAssetStore {
	return &MockAssetStore{
		files:       make(map[string][]byte),
		ReadErrors:  make(map[string]error),
		WriteErrors: make(map[string]error),
	}
}

// Put seeds a file into the mock store
func (m *MockAssetStore) Put(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = append([]byte(nil), data...)
}

// Read returns the seeded file or a not-exist path error
func (m *MockAssetStore) Read(ctx context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reads = append(m.reads, path)
	if err, ok := m.ReadErrors[path]; ok {
		return nil, err
	}
	data, ok := m.files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// Write records the call and stores the data
func (m *MockAssetStore) Write(ctx context.Context, path string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes = append(m.writes, WriteCall{Path: path, Data: append([]byte(nil), data...), Perm: perm})
	if err, ok := m.WriteErrors[path]; ok {
		return err
	}
	m.files[path] = append([]byte(nil), data...)
	return nil
}

// Get returns stored data for path
func (m *MockAssetStore) Get(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	return data, ok
}

// GetReads returns all paths passed to Read
func (m *MockAssetStore) GetReads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.reads...)
}

// GetWrites returns all recorded Write calls
func (m *MockAssetStore) GetWrites() []WriteCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]WriteCall(nil), m.writes...)
}
