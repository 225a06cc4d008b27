package repository

// CacheRepository caches serialized quote results. The engine itself
// makes no freshness guarantees; expiry belongs to the implementation.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
