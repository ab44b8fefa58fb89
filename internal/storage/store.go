package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists the device state document.
type Store interface {
	// Load reads the stored document. Returns ErrNoDocument when nothing
	// has been saved yet and an error wrapping ErrCorruptDocument when the
	// stored data cannot be decoded.
	Load(ctx context.Context) (*Document, error)
	// Save writes the document durably, replacing any previous one.
	Save(ctx context.Context, doc *Document) error
}

var (
	// ErrNoDocument means no state has been persisted yet (first run).
	ErrNoDocument = errors.New("no stored document")
	// ErrCorruptDocument means stored data exists but cannot be decoded.
	ErrCorruptDocument = errors.New("corrupt document")
)

// Supported backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// DefaultPath returns the default data location for a backend.
func DefaultPath(backend string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	switch backend {
	case BackendSQLite:
		return filepath.Join(homeDir, ".wristcomp.db"), nil
	default:
		return filepath.Join(homeDir, ".wristcomp.json"), nil
	}
}

// Open opens the store for a backend at the given path. The returned
// cleanup releases any held resources.
func Open(ctx context.Context, backend, path string) (Store, func(), error) {
	switch backend {
	case BackendJSON, "":
		return NewFileStore(path), func() {}, nil
	case BackendSQLite:
		s, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
