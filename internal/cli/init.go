package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/koffee/internal/backup"
)

type InitCmd struct {
	Force    bool `help:"Delete the existing database before initializing."`
	NoBackup bool `help:"Skip the backup normally taken before --force deletes the database."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Loaded = true
	fmt.Fprintf(ctx.Out, "Initialized koffee storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

func (c *InitCmd) reset(ctx *Context) error {
	dbPath := ctx.Store.GetConfigPath()
	_, err := os.Stat(dbPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to access existing database: %w", err)
	}

	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close existing database: %w", err)
	}
	if !c.NoBackup {
		path, err := backup.NewManager(dbPath).Create()
		if err != nil {
			return fmt.Errorf("refusing to delete database without a backup: %w", err)
		}
		fmt.Fprintf(ctx.Out, "Backed up existing database to: %s\n", path)
	}
	if err := os.Remove(dbPath); err != nil {
		return fmt.Errorf("failed to delete existing database: %w", err)
	}
	ctx.Loaded = false
	fmt.Fprintf(ctx.Out, "Deleted existing database at: %s\n", dbPath)
	return nil
}
