package config

const (
	// DefaultTimeout is the total request timeout
	DefaultTimeout = "10s"
	// DefaultMaxRedirects is the number of redirects followed
	DefaultMaxRedirects = 30
	// DefaultLogLevel keeps diagnostics quiet unless something goes wrong
	DefaultLogLevel = "warn"
)

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Timeout:         DefaultTimeout,
		FollowRedirects: BoolPtr(true),
		MaxRedirects:    DefaultMaxRedirects,
		ValidateSSL:     BoolPtr(true),
		Proxy:           "",
		UserAgent:       "",
		NoColor:         BoolPtr(false),
		LogLevel:        DefaultLogLevel,
	}
}
