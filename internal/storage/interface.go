package storage

import "github.com/julianstephens/koffee/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Profile
	GetProfile() (models.Profile, error)
	SaveProfile(models.Profile) error

	// Utils
	GetConfigPath() string
}
