// Package sqlite provides the SQLite-backed round archive.
//
// Each row keeps the CBOR transcript as the source of truth; the range,
// commitment and result columns exist for listing without decoding.
package sqlite
