package configs

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the server listens on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`

	// CORSOrigins lists the dashboard origins allowed to call the API
	// from a browser, comma separated.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}
