// Package importers is the public entry point of the import core. It
// routes raw export content to the pipeline matching its declared format
// and returns a flat, ordered sequence of normalized entries.
//
// # Architecture
//
//	Raw content → Parse → (dialect detection | tree walk) → field
//	extraction → normalization → []entities.Entry
//
// Each source format lives in its own package (keepass, lastpass,
// nordpass) exposing a Parse* function over raw content. This package
// owns the format discriminators and the error taxonomy the host layers
// map onto HTTP statuses and CLI exit messages.
//
// # Adding a new source format
//
//  1. Create a package under internal/ with a Parse function returning
//     ([]entities.Entry, error).
//  2. Add a Format constant and a case in Parse, wrapping parse failures
//     in *CorruptInputError.
//  3. Extend SupportedFormats so the error message and /api/formats
//     listing stay accurate.
//
// The core never writes entries anywhere: persistence, deduplication
// across files, and credential validation are caller concerns.
package importers
