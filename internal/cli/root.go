package cli

import (
	"io"
	"os"

	"github.com/julianstephens/koffee/internal/logger"
	"github.com/julianstephens/koffee/internal/models"
	"github.com/julianstephens/koffee/internal/planner"
	"github.com/julianstephens/koffee/internal/storage"
)

type Context struct {
	Store     storage.Provider
	Planner   *planner.Planner
	Beverages []models.Beverage
	// Loaded is false when the store has not been initialized yet.
	Loaded bool
	In     io.Reader
	Out    io.Writer
	// Err receives prompts when Out carries machine-readable output.
	Err io.Writer
}

func (c *Context) errOut() io.Writer {
	if c.Err == nil {
		return os.Stderr
	}
	return c.Err
}

// StoredProfile returns the saved profile, or the zero Profile when none is available.
func (c *Context) StoredProfile() models.Profile {
	if !c.Loaded {
		return models.Profile{}
	}
	profile, err := c.Store.GetProfile()
	if err != nil {
		logger.Warn("Failed to read stored profile", "error", err)
		return models.Profile{}
	}
	return profile
}

// SaveProfile persists profile, initializing the store first if needed.
// The install ID of the existing profile is kept.
func (c *Context) SaveProfile(profile models.Profile) error {
	if !c.Loaded {
		if err := c.Store.Init(); err != nil {
			return err
		}
		c.Loaded = true
	}
	profile.InstallID = c.StoredProfile().InstallID
	return c.Store.SaveProfile(profile)
}
