package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns a fresh path for a test database. The file lives in a
// per-test temporary directory, so every test gets its own database and
// cleanup happens automatically.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.New().String())
}
