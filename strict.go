package bindex

import (
	"log/slog"
	"sort"
	"sync"
)

// StrictEngine implements Search with exact name matching over an ordered
// in-memory index.
//
// The index keeps one invoice per name and iterates names in ascending
// order, which makes offset/limit paging deterministic across repeated
// queries against an unchanged index. It is safe for concurrent use:
// updates are exclusive, queries run in parallel with each other.
type StrictEngine struct {
	mu     sync.RWMutex
	byName map[string]*Invoice
	names  []string // ascending, one entry per byName key

	log *slog.Logger
}

// NewStrictEngine creates an empty strict engine.
func NewStrictEngine(opts ...Option) *StrictEngine {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &StrictEngine{
		byName: make(map[string]*Invoice, options.Capacity),
		names:  make([]string, 0, options.Capacity),
		log:    options.Logger,
	}
}

// Index adds a clone of the invoice to the index, keyed by its bindle name.
// An already-present name is overwritten; the old entry is discarded.
// The invoice is visible to queries as soon as Index returns.
func (e *StrictEngine) Index(inv *Invoice) error {
	if inv == nil {
		return ErrNilInvoice
	}
	name := inv.Bindle.Name

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.byName[name]; !exists {
		i := sort.SearchStrings(e.names, name)
		e.names = append(e.names, "")
		copy(e.names[i+1:], e.names[i:])
		e.names[i] = name
	}
	e.byName[name] = inv.Clone()

	e.log.Debug("indexed invoice", "name", name, "version", inv.Bindle.Version)
	return nil
}

// Query scans the index in name order and collects every invoice whose name
// equals term exactly (case-sensitive) and whose version satisfies filter,
// then applies the offset/limit window from opts.
//
// An offset at or past the total match count returns an empty page with
// More=false; it is not an error.
func (e *StrictEngine) Query(term, filter string, opts SearchOptions) (*Matches, error) {
	e.mu.RLock()
	var found []*Invoice
	for _, name := range e.names {
		if name != term {
			continue
		}
		if inv := e.byName[name]; matchesRequirement(e.log, inv.Bindle.Version, filter) {
			found = append(found, inv.Clone())
		}
	}
	e.mu.RUnlock()

	matches := newMatches(opts)
	matches.Strict = true
	matches.Yanked = false
	page(found, matches)

	return matches, nil
}

// page applies the offset/limit window to the full match list. Arithmetic is
// done in uint64 so offset plus a byte-sized limit cannot overflow.
func page(found []*Invoice, m *Matches) {
	m.Total = uint64(len(found))

	// Past the end of the match set: empty page, not an error.
	if m.Offset >= m.Total {
		return
	}

	end := m.Offset + uint64(m.Limit)
	if end > m.Total {
		end = m.Total
	}
	m.More = m.Total > end
	m.Invoices = found[m.Offset:end]
}

// Len returns the number of distinct names in the index.
func (e *StrictEngine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.byName)
}

// Invoices returns clones of every indexed invoice in ascending name order.
func (e *StrictEngine) Invoices() []*Invoice {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]*Invoice, 0, len(e.names))
	for _, name := range e.names {
		out = append(out, e.byName[name].Clone())
	}
	return out
}

var _ Search = (*StrictEngine)(nil)
