package bindex

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index", "default.json.zst")

	engine := NewStrictEngine()
	require.NoError(t, engine.Index(invoiceFixture("my/bindle", "1.2.3")))
	require.NoError(t, engine.Index(invoiceFixture("other/bindle", "0.1.0")))
	require.NoError(t, engine.Save(path))

	loaded, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())

	matches, err := loaded.Query("my/bindle", "^1.2", DefaultSearchOptions())
	require.NoError(t, err)
	require.Len(t, matches.Invoices, 1)
	assert.Equal(t, "1.2.3", matches.Invoices[0].Bindle.Version)
}

func TestLoadSnapshot_MissingFileIsEmptyEngine(t *testing.T) {
	engine, err := LoadSnapshot(filepath.Join(t.TempDir(), "nope.json.zst"))
	require.NoError(t, err)
	assert.Equal(t, 0, engine.Len())
}

func TestLoadSnapshot_PlainJSON(t *testing.T) {
	// Uncompressed snapshots load too (no zstd frame header).
	path := filepath.Join(t.TempDir(), "plain.json")

	data, err := json.Marshal(snapshot{Invoices: []*Invoice{invoiceFixture("my/bindle", "1.2.3")}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	engine, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, 1, engine.Len())
}

func TestLoadSnapshot_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json.zst")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadSnapshot(path)
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
}

func TestSnapshot_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.json.zst")

	engine := NewStrictEngine()
	require.NoError(t, engine.Index(invoiceFixture("my/bindle", "1.2.3")))
	require.NoError(t, engine.Save(path))

	require.NoError(t, engine.Index(invoiceFixture("my/bindle", "2.0.0")))
	require.NoError(t, engine.Save(path))

	loaded, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())

	matches, err := loaded.Query("my/bindle", "2.0.0", DefaultSearchOptions())
	require.NoError(t, err)
	assert.Len(t, matches.Invoices, 1)
}
