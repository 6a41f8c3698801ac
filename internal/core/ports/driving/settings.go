package driving

import "github.com/custodia-labs/postnav/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings with defaults applied.
	Get() (*domain.Settings, error)

	// Save persists application settings.
	Save(settings *domain.Settings) error

	// Validate checks that the configured drivers are supported and
	// that the settings they need are present.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
