package cache

import "time"

// BytesCache is a minimal cache API storing raw bytes with TTL.
// The API layer uses it to cache serialized analysis responses.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}
