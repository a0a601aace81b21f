package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fbarbosa/invest-recon/internal/logging"
	"fbarbosa/invest-recon/internal/models"
	"fbarbosa/invest-recon/internal/store"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := store.New(dir, &logging.MockLogger{})
	require.NoError(t, err)

	accounts := []models.Account{
		{
			ID:            1,
			AccountNumber: "0001",
			AccountHolder: "F. Barbosa",
			Description:   "Tesouro IPCA 2029",
			Balance:       decimal.RequireFromString("1234.56"),
			CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			IsActive:      true,
		},
		{
			ID:          2,
			Description: "CDB DI",
			Balance:     decimal.RequireFromString("-10.5"),
		},
	}

	require.NoError(t, s.Save(accounts))

	loaded, fetchedAt, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, int64(1), loaded[0].ID)
	assert.Equal(t, "Tesouro IPCA 2029", loaded[0].Description)
	assert.True(t, loaded[0].Balance.Equal(accounts[0].Balance))
	assert.True(t, loaded[1].Balance.Equal(accounts[1].Balance))
	assert.WithinDuration(t, time.Now(), fetchedAt, time.Minute)
}

func TestSaveCreatesCacheDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	s, err := store.New(dir, &logging.MockLogger{})
	require.NoError(t, err)

	require.NoError(t, s.Save(nil))

	_, err = os.Stat(filepath.Join(dir, "accounts.yaml"))
	assert.NoError(t, err)
}

func TestLoadMissingCache(t *testing.T) {
	s, err := store.New(t.TempDir(), &logging.MockLogger{})
	require.NoError(t, err)

	_, _, err = s.Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCorruptCache(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "accounts.yaml"), []byte("{not yaml"), 0o644))

	s, err := store.New(dir, &logging.MockLogger{})
	require.NoError(t, err)

	_, _, err = s.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding account cache")
}
