// Package storage defines persistence contracts for revealed rounds.
//
// A round is archived only after its reveal, so every stored record carries
// both keys and can be re-verified offline.
package storage
