package bindex

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aweris/bindex/internal/compression"
)

// snapshot is the on-disk form of an index: the invoices, nothing else.
// Order in the file does not matter; the engine re-sorts on load.
type snapshot struct {
	Invoices []*Invoice `json:"invoices"`
}

// Save writes a zstd-compressed JSON snapshot of the index to path,
// creating parent directories as needed.
func (e *StrictEngine) Save(path string) error {
	data, err := json.Marshal(snapshot{Invoices: e.Invoices()})
	if err != nil {
		return fmt.Errorf("serialize snapshot: %w", err)
	}

	compressed, err := compression.Compress(data)
	if err != nil {
		return fmt.Errorf("compress snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	if err := os.WriteFile(path, compressed, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	return nil
}

// LoadSnapshot reads a snapshot written by Save and returns an engine
// populated with its invoices. A missing file yields an empty engine, so
// first use and reopening share one code path.
func LoadSnapshot(path string, opts ...Option) (*StrictEngine, error) {
	engine := NewStrictEngine(opts...)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return engine, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	data, err := compression.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptSnapshot, path, err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptSnapshot, path, err)
	}

	for _, inv := range snap.Invoices {
		if err := engine.Index(inv); err != nil {
			return nil, fmt.Errorf("index snapshot entry: %w", err)
		}
	}

	return engine, nil
}
