// Package bindex provides a strict search index for versioned invoice records.
//
// Invoices are indexed by bindle name (indexing an existing name replaces the
// previous entry) and queried by exact name plus a semver range filter.
// Results are paged deterministically: the index iterates names in ascending
// order, so the same offset/limit window always returns the same invoices for
// an unchanged index.
//
// Basic usage:
//
//	engine := bindex.NewStrictEngine()
//
//	// Index an invoice (last write per name wins)
//	engine.Index(inv)
//
//	// Query by exact name and version requirement
//	matches, _ := engine.Query("my/bindle", "^1.2", bindex.DefaultSearchOptions())
//	for _, inv := range matches.Invoices {
//	    fmt.Println(inv.Bindle.Name, inv.Bindle.Version)
//	}
//
// Version requirements follow standard semver range grammar: exact pins
// ("1.2.3", "= 1.2.3"), comparison operators (">= 1.0, < 2.0"), tilde ("~1.2")
// and caret ("^1.1") ranges. An empty requirement matches every version; a
// requirement that does not parse matches nothing.
//
// With persistence:
//
//	engine.Save("index.json.zst")
//	engine, _ = bindex.LoadSnapshot("index.json.zst")
package bindex
