package bindex

// DefaultLimit is the maximum number of invoices a query returns when the
// caller does not say otherwise.
const DefaultLimit uint8 = 50

// Search is the capability a query engine exposes to hosts. Multiple engine
// variants can sit behind the same contract; StrictEngine is the exact-match
// one.
type Search interface {
	// Index adds the invoice to the engine. Indexing a name that is already
	// present is an update: the previous entry is replaced wholesale.
	Index(inv *Invoice) error

	// Query returns the invoices whose name matches term and whose version
	// satisfies the filter expression, windowed by opts. A filter that does
	// not parse as a version requirement yields zero matches, not an error.
	Query(term, filter string, opts SearchOptions) (*Matches, error)
}

// SearchOptions controls how a query is evaluated and paged.
type SearchOptions struct {
	// Offset is the index of the first result within the full match set.
	Offset uint64
	// Limit is the maximum number of invoices to return.
	Limit uint8
	// Strict selects the engine variant upstream; the strict engine itself
	// ignores it and always reports strict results.
	Strict bool
	// Yanked requests inclusion of yanked invoices. The strict engine does
	// not enforce it yet; resolving yank filtering is left to the host.
	Yanked bool
}

// DefaultSearchOptions returns the options a bare query uses:
// offset 0, limit 50, strict and yanked off.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{Limit: DefaultLimit}
}

// Matches is one page of query results plus the metadata needed to page
// through the rest.
type Matches struct {
	// Strict reports whether the engine evaluated the query in strict mode.
	Strict bool
	// Offset and Limit echo the query window.
	Offset uint64
	Limit  uint8
	// Total is the number of matches before paging.
	Total uint64
	// More is true when matches beyond this page remain.
	More bool
	// Yanked reports whether the page may include yanked invoices.
	Yanked bool
	// Invoices holds at most Limit entries, in index order.
	Invoices []*Invoice
}

func newMatches(opts SearchOptions) *Matches {
	return &Matches{
		Strict: opts.Strict,
		Offset: opts.Offset,
		Limit:  opts.Limit,
		Yanked: opts.Yanked,
	}
}
