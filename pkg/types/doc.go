// Package types defines the entity records, patch types, backup envelope,
// and standard errors for the Deckhand logbook store.
//
// All timestamps are epoch milliseconds (int64). Nullable columns are
// pointer fields so that null survives a backup round trip. List-valued
// fields (tags, services) are string slices stored as JSON text in the
// database.
package types
