// Package storage is the durable key/value store backing the client session.
//
// The store lives in a local SQLite file (modernc.org/sqlite, no cgo) whose
// schema is managed by embedded goose migrations. Values are raw bytes; the
// session layer decides how to encode them.
//
// Get on a missing key returns (nil, nil). Delete of a missing key is not an
// error. All operations honor context cancellation.
package storage
