package services

import (
	"fmt"
	"sync"
)

// MockExportSink is a mock implementation of ExportSink for testing
type MockExportSink struct {
	files     map[string]string // map of filename to content
	mimeTypes map[string]string
	failWith  error
	mu        sync.RWMutex
}

// NewMockExportSink creates a new mock export sink
func NewMockExportSink() *MockExportSink {
	return &MockExportSink{
		files:     make(map[string]string),
		mimeTypes: make(map[string]string),
	}
}

// Write records the export in mock storage
func (m *MockExportSink) Write(filename, content, mimeType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return m.failWith
	}

	m.files[filename] = content
	m.mimeTypes[filename] = mimeType
	return nil
}

// FailWith makes subsequent writes return the given error
func (m *MockExportSink) FailWith(err error) {
	m.mu.Lock()
	m.failWith = err
	m.mu.Unlock()
}

// Content returns the recorded content for a filename (for testing assertions)
func (m *MockExportSink) Content(filename string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	content, exists := m.files[filename]
	if !exists {
		return "", fmt.Errorf("export not found in mock sink: %s", filename)
	}
	return content, nil
}

// MimeType returns the recorded mime type for a filename
func (m *MockExportSink) MimeType(filename string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mimeTypes[filename]
}

// FileExists checks if an export exists in mock storage
func (m *MockExportSink) FileExists(filename string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.files[filename]
	return exists
}

// Files returns all recorded exports (for testing assertions)
func (m *MockExportSink) Files() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent race conditions
	files := make(map[string]string, len(m.files))
	for k, v := range m.files {
		files[k] = v
	}
	return files
}

// Clear removes all exports from mock storage
func (m *MockExportSink) Clear() {
	m.mu.Lock()
	m.files = make(map[string]string)
	m.mimeTypes = make(map[string]string)
	m.failWith = nil
	m.mu.Unlock()
}
