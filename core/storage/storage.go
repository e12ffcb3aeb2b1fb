package storage

// Store is a keyed string store standing in for durable client-side storage
// (the browser localStorage of the consuming front-end). Implementations must
// be safe for concurrent use and must never fail hard: absent keys are
// reported by the ok flag, not by errors.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)
	// Set stores value under key, replacing any previous value.
	Set(key, value string)
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string)
}
