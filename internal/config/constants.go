package config

const (
	// DefaultPort matches the port the web frontend expects.
	DefaultPort = 8000

	// DefaultDatabasePath is the default path for the SQLite database
	DefaultDatabasePath = "./data/grocery.db"

	// DefaultMaxPageSize bounds the limit of every list endpoint
	DefaultMaxPageSize = 100

	// DefaultAllowedOrigins is the development server of the web frontend
	DefaultAllowedOrigins = "http://localhost:4200"
)
