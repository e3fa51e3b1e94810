package redis

const (
	// KeyPrefixSession is the prefix for session query keys
	KeyPrefixSession = "hub:session:"
)

// SessionKey returns the Redis key for a session ID
func SessionKey(id string) string {
	return KeyPrefixSession + id
}

// SessionPattern returns the SCAN pattern matching every session key
func SessionPattern() string {
	return KeyPrefixSession + "*"
}
