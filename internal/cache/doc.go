// Package cache provides the storage behind download memoization.
//
// A cache entry is an opaque byte slice stored under a key. The presence of
// a key is the only hit signal: entries are never validated against the URL
// they were downloaded from and never expire.
//
// Stores:
//   - FileStore: keys are file paths on the local disk (the default)
//   - MemoryStore: process-local map, used in tests
//   - S3Store: keys are object names in an S3-compatible bucket
//   - Memo: LRU front for any other store
package cache
