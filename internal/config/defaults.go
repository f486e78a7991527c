package config

// Default catalog endpoints. The primary is a WordPress-style listing
// API; the mirror serves the same resource from a relay host.
const (
	DefaultCatalogURL       = "https://hellhades.com/wp-json/wp/v2/champions"
	DefaultCatalogMirrorURL = "https://api.allorigins.win/raw?url=https%3A%2F%2Fhellhades.com%2Fwp-json%2Fwp%2Fv2%2Fchampions"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseDir: DefaultBaseDir(),

		Catalog: CatalogConfig{
			PrimaryURL: DefaultCatalogURL,
			MirrorURL:  DefaultCatalogMirrorURL,
			RateLimit:  30,
			PageSize:   500,
		},
	}
}
