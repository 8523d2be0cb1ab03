package submit

import "os"

// DefaultEndpoint is the collection webhook results are posted to.
const DefaultEndpoint = "https://joshtsang0916.zeabur.app/webhook-test/02c727e5-4ab0-4754-b271-cb841239f346"

// Config holds submission settings.
type Config struct {
	// Endpoint is the collection URL. Default: DefaultEndpoint.
	Endpoint string
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := Config{Endpoint: DefaultEndpoint}
	if u := os.Getenv("FOPO_WEBHOOK_URL"); u != "" {
		cfg.Endpoint = u
	}
	return cfg
}
