package domain

// Settings holds the resolved application configuration.
type Settings struct {
	// Taxonomy is the default taxonomy for term constraints.
	Taxonomy string

	// DateLayout is the Go time layout used for %date.
	DateLayout string

	// Locale selects the language of default link labels.
	Locale string

	// Permalink is an RFC 6570 URI template for post links.
	Permalink string

	// Storage configures the content store.
	Storage StorageSettings

	// Cache configures the result cache.
	Cache CacheSettings
}

// StorageSettings selects and configures the content store.
type StorageSettings struct {
	// Driver is "sqlite", "postgres" or "memory".
	Driver string

	// DataDir is the SQLite data directory.
	DataDir string

	// PostgresDSN is the Postgres connection string.
	PostgresDSN string
}

// CacheSettings selects and configures the result cache.
type CacheSettings struct {
	// Driver is "memory", "redis" or "none".
	Driver string

	// RedisURL is the Redis connection URL.
	RedisURL string

	// TTLSeconds bounds entry lifetime. Zero keeps entries until evicted.
	TTLSeconds int
}

// Default settings values.
const (
	DefaultDateLayout = "January 2, 2006"
	DefaultLocale     = "en"
	DefaultPermalink  = "/?p={id}"
	DefaultStorage    = "sqlite"
	DefaultCache      = "memory"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Cache drivers.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Taxonomy:   DefaultTaxonomy,
		DateLayout: DefaultDateLayout,
		Locale:     DefaultLocale,
		Permalink:  DefaultPermalink,
		Storage: StorageSettings{
			Driver: DefaultStorage,
		},
		Cache: CacheSettings{
			Driver: DefaultCache,
		},
	}
}
