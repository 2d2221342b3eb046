package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"covdelta/internal/cmd"
	"covdelta/internal/config"
	"covdelta/internal/version"
)

func main() {
	// Load optional .env before env-backed flags are resolved
	config.LoadDotEnv()

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		settings = &config.Settings{}
	}

	// Parse CLI arguments with Kong
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("covdelta"),
		kong.Description(version.Tagline),
		kong.Vars{
			"default_package_root": cmd.DefaultPackageRoot,
			"version":              version.Info(),
		},
		kong.UsageOnError(),
	)

	// Execute the selected command; cleanup runs on every exit path
	err = ctx.Run(&cli)
	if closeErr := cli.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: cleanup failed: %v\n", closeErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
