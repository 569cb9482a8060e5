// Package cache implements a bounded-memory key-value store that spills
// least-recently-used entries to per-entry files on disk when the
// in-memory tier exceeds its capacity, and transparently reloads them on
// access.
//
// Every entry lives in exactly one tier at a time: hot (in memory,
// tracked in access order) or cold (a single serialized file under an
// instance-owned scratch directory). Writes always land hot; exceeding
// capacity spills the least-recently-used entry; reading a cold entry
// promotes it back into memory and deletes its file.
//
// A Cache is not safe for concurrent use. Callers that share one across
// goroutines must hold their own lock around every operation, reads
// included, since reads can mutate both tiers.
package cache
