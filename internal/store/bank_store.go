package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"minibank/internal/domain"
	"minibank/internal/util/logger"
)

const snapshotFile = "bank.json"

// BankFileStore persists the bank snapshot to a JSON file on disk.
type BankFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewBankFileStore returns a BankFileStore rooted at dir.
func NewBankFileStore(dir string) *BankFileStore {
	return &BankFileStore{dir: dir}
}

// Save writes the snapshot, replacing any prior one. Filesystem failures
// are reported as domain.ErrSnapshotWrite.
func (s *BankFileStore) Save(snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, snapshotFile)
	if err := writeJSON(path, snap, 0o600); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSnapshotWrite, err)
	}
	logger.Log.Debug("snapshot saved",
		zap.String("path", path),
		zap.Int("users", len(snap)))
	return nil
}

// Load reads the stored snapshot. A missing file reports ok == false with
// a nil error; a file that exists but cannot be decoded is reported as
// domain.ErrSnapshotCorrupt rather than a raw parse fault.
func (s *BankFileStore) Load() (domain.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, snapshotFile)
	snap := make(domain.Snapshot)
	ok, err := readJSON(path, &snap)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", domain.ErrSnapshotCorrupt, err)
	}
	if !ok {
		logger.Log.Debug("no snapshot on disk", zap.String("path", path))
		return nil, false, nil
	}
	logger.Log.Debug("snapshot loaded",
		zap.String("path", path),
		zap.Int("users", len(snap)))
	return snap, true, nil
}

// Clear removes the stored snapshot; clearing an absent store succeeds.
func (s *BankFileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, snapshotFile)
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSnapshotWrite, err)
	}
	logger.Log.Debug("snapshot cleared", zap.String("path", path))
	return nil
}

// Compile-time assertion that BankFileStore implements domain.SnapshotStore.
var _ domain.SnapshotStore = (*BankFileStore)(nil)
