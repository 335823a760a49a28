// Package invoicefile loads TOML invoice documents from disk.
package invoicefile

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/aweris/bindex"
)

const DefaultConcurrency = 4

// Load parses a single TOML invoice file.
func Load(path string) (*bindex.Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read invoice: %w", err)
	}

	var inv bindex.Invoice
	if err := toml.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("parse invoice %s: %w", path, err)
	}

	if inv.Bindle.Name == "" {
		return nil, fmt.Errorf("invoice %s: missing bindle name", path)
	}

	return &inv, nil
}

// LoadDir parses every .toml file under dir, descending into
// subdirectories, with at most concurrency files in flight. The first
// failing file cancels the rest.
func LoadDir(ctx context.Context, dir string, concurrency int) ([]*bindex.Invoice, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".toml") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	invoices := make([]*bindex.Invoice, len(paths))

	p := pool.New().WithMaxGoroutines(concurrency).WithContext(ctx).WithCancelOnError()
	for i, path := range paths {
		p.Go(func(ctx context.Context) error {
			inv, err := Load(path)
			if err != nil {
				return err
			}
			invoices[i] = inv
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return invoices, nil
}
