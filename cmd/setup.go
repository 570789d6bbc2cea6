package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/lrcx/internal/shared"
)

// ConfigInit writes the example configuration to the --config path.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	r.logger.Info("creating config file from template", "path", configPath)
	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}

	r.writePlain("✓ Config file written to %s\n", configPath)
	r.writePlainln("Next steps:")
	r.writePlain("1. Adjust workers, rate_limit and defaults in %s\n", configPath)
	r.writePlain("2. Run 'lrcx fetch /path/to/music' to download lyrics\n")
	return nil
}

// ConfigShow prints the configuration a fetch would run with, after env overrides.
func (r *Runner) ConfigShow(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		r.logger.Warn("configuration is invalid", "error", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(config, true)
	}

	r.writePlainHeader("Configuration")
	r.writePlain("lrclib.base_url           %s\n", config.LRCLib.BaseURL)
	r.writePlain("lrclib.user_agent         %s\n", config.LRCLib.UserAgent)
	r.writePlain("lrclib.timeout            %s\n", config.LRCLib.Timeout())
	r.writePlain("lrclib.rate_limit         %s\n", formatRate(config.LRCLib.RateLimit))
	r.writePlain("fetch.workers             %d\n", config.Fetch.Workers)
	r.writePlain("fetch.duration_tolerance  %ds\n", config.Fetch.DurationTolerance)
	r.writePlain("fetch.romanize            %t\n", config.Fetch.Romanize)
	r.writePlain("fetch.embed               %t\n", config.Fetch.Embed)
	r.writePlain("log.level                 %s\n", config.Log.Level)
	r.writePlain("log.file                  %s\n", config.Log.File)
	return nil
}

func formatRate(limit float64) string {
	if limit <= 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%g req/s", limit)
}
