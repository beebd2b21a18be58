// Package kvstore is the storage port behind the complaint collection and
// the rewards ledger: a flat string-to-string map with three backends.
package kvstore

import "context"

// Store is a durable string key-value map. Get reports found=false for a key
// that was never written.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
