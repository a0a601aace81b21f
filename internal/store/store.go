// Package store caches the last fetched account list on disk so the
// reconciliation flow can run against known accounts when the API is
// unreachable or explicitly skipped.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"fbarbosa/invest-recon/internal/logging"
	"fbarbosa/invest-recon/internal/models"
)

const cacheFileName = "accounts.yaml"

// AccountStore persists account snapshots as YAML.
type AccountStore struct {
	dir    string
	logger logging.Logger
}

// snapshot is the on-disk format.
type snapshot struct {
	FetchedAt time.Time        `yaml:"fetchedAt"`
	Accounts  []models.Account `yaml:"accounts"`
}

// New creates a store rooted at dir. An empty dir resolves to
// ~/.config/invest-recon.
func New(dir string, logger logging.Logger) (*AccountStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving cache directory: %w", err)
		}
		dir = filepath.Join(home, ".config", "invest-recon")
	}
	return &AccountStore{dir: dir, logger: logger}, nil
}

// Save writes the account snapshot, creating the cache directory if needed.
func (s *AccountStore) Save(accounts []models.Account) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := yaml.Marshal(snapshot{
		FetchedAt: time.Now(),
		Accounts:  accounts,
	})
	if err != nil {
		return fmt.Errorf("encoding account cache: %w", err)
	}

	path := filepath.Join(s.dir, cacheFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing account cache: %w", err)
	}

	s.logger.Debug("Cached account snapshot",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(accounts)})
	return nil
}

// Load reads the cached snapshot. A missing cache returns os.ErrNotExist.
func (s *AccountStore) Load() ([]models.Account, time.Time, error) {
	path := filepath.Join(s.dir, cacheFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, time.Time{}, err
	}

	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, time.Time{}, fmt.Errorf("decoding account cache: %w", err)
	}
	return snap.Accounts, snap.FetchedAt, nil
}
