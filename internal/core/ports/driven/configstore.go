package driven

// ConfigStore provides persistent key-value configuration storage.
// Keys use dot notation (e.g. "oauth.client_id").
type ConfigStore interface {
	// Get retrieves a raw value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, empty if absent.
	GetString(key string) string

	// GetBool retrieves a boolean value, false if absent.
	GetBool(key string) bool

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Path returns the backing file path.
	Path() string
}
