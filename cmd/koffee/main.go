package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/koffee/internal/beverages"
	"github.com/julianstephens/koffee/internal/cli"
	"github.com/julianstephens/koffee/internal/constants"
	"github.com/julianstephens/koffee/internal/errors"
	"github.com/julianstephens/koffee/internal/logger"
	"github.com/julianstephens/koffee/internal/models"
	"github.com/julianstephens/koffee/internal/planner"
	"github.com/julianstephens/koffee/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Path to the profile database." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`
	Catalog string `help:"TOML file replacing the built-in beverage table." type:"path"`

	Init      cli.InitCmd      `cmd:"" help:"Initialize koffee storage."`
	Form      cli.FormCmd      `cmd:"" help:"Fill in the interactive form." default:"1"`
	Calc      cli.CalcCmd      `cmd:"" help:"Answer the calculator prompts."`
	Profile   cli.ProfileCmd   `cmd:"" help:"Show or update the stored default inputs."`
	Beverages cli.BeveragesCmd `cmd:"" help:"List the caffeine content of common beverages."`
	Serve     cli.ServeCmd     `cmd:"" help:"Serve plans over HTTP."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Optimal caffeine intake calculator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
			"serve_addr":  constants.DefaultServeAddr,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Report(os.Stderr, err)
	}

	catalog := beverages.Default()
	if CLI.Catalog != "" {
		var err error
		if catalog, err = beverages.Load(CLI.Catalog); err != nil {
			errors.Fatal(err)
		}
	}

	store := storage.NewSQLiteStore(CLI.Config)
	appCtx := &cli.Context{
		Store:     store,
		Planner:   planner.New(),
		Beverages: catalog,
		In:        os.Stdin,
		Out:       os.Stdout,
		Err:       os.Stderr,
	}
	defer store.Close()

	// init opens the database itself; other commands run without a store until one exists
	if ctx.Command() != "init" {
		loaded, err := openStore(store)
		if err != nil {
			errors.Fatal(err)
		}
		appCtx.Loaded = loaded
		if loaded {
			tagInstall(appCtx.StoredProfile())
		}
	}

	logger.Debug("Running command", "command", ctx.Command())
	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}

// openStore loads an existing database. A missing one is not an error; any
// other failure closes the store before returning.
func openStore(store storage.Provider) (bool, error) {
	err := store.Load()
	if err == nil {
		return true, nil
	}
	if storage.IsNotInitialized(err) {
		logger.Debug("No profile database yet", "path", store.GetConfigPath())
		return false, nil
	}
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close store", "error", closeErr)
	}
	return false, err
}

func tagInstall(profile models.Profile) {
	if profile.InstallID != "" {
		logger.Tag("install", profile.InstallID)
	}
}
