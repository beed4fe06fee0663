package clubsite

// SiteConfig holds all configuration for a clubsite server.
type SiteConfig struct {
	Addr string // Listen address (default ":3000")

	AdminPassword string // Required: shared admin password
	SessionSecret string // Required: session cookie encryption secret
	CookieSecure  bool   // Set true for HTTPS

	DataDir   string // Local JSON document directory (default "data")
	StaticDir string // Public asset root; uploads live under it (default "public")

	// S3 settings. When S3Bucket is set the S3 storage adapter is used
	// instead of local disk. S3BaseURL overrides the public URL prefix for
	// uploaded images.
	S3Bucket  string
	S3Region  string
	S3BaseURL string

	SeedKey string // Key guarding the seed endpoint; empty disables seeding

	VisionAPIKey string // API key for the vision model; empty disables AI analysis
	VisionModel  string // Model name (default "gemini-2.0-flash")

	AnalyticsEnabled      bool   // Enable view analytics
	AnalyticsDatabasePath string // Analytics SQLite path (default "data/analytics.db")
}

func (c *SiteConfig) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.S3Region == "" {
		c.S3Region = "us-east-1"
	}
	if c.AnalyticsDatabasePath == "" {
		c.AnalyticsDatabasePath = "data/analytics.db"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithStorage overrides the storage adapter chosen from SiteConfig. Useful
// for tests and custom backends.
func WithStorage(s Storage) Option {
	return func(a *App) {
		a.Storage = s
	}
}

// WithCustomRoutes registers additional routes on the Echo instance. The
// callback runs after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
