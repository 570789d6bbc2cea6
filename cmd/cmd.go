// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// fetchCommand downloads lyrics for a library; it is also the root action.
func fetchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "Download lyrics for every FLAC file in a library",
		ArgsUsage: "<library>",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "library"},
		},
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:    "romanize",
				Aliases: []string{"r"},
				Usage:   "Romanize Japanese and Korean lyrics",
			},
			&cli.BoolFlag{
				Name:    "embed",
				Aliases: []string{"e"},
				Usage:   "Embed lyrics into the FLAC LYRICS tag",
			},
			&cli.BoolFlag{
				Name:  "process-existing",
				Usage: "Only romanize/embed existing .lrc files, no downloads",
			},
			&cli.BoolFlag{
				Name:  "scan-unsynced",
				Usage: "Only re-fetch songs whose .lrc file has no timestamps",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Concurrent downloads (default from config: 10)",
			},
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "Maximum LRCLIB requests per second (0 for unlimited)",
				Value: -1,
			},
			&cli.StringFlag{
				Name:  "report",
				Usage: "Write a run report to this path",
			},
			&cli.StringFlag{
				Name:  "report-format",
				Usage: "Report format: json, csv or markdown",
				Value: "json",
			},
			&cli.BoolFlag{
				Name:    "progress",
				Aliases: []string{"p"},
				Usage:   "Show a full-screen progress display when attached to a terminal",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
			},
		},
		Action: r.Fetch,
	}
}

// configCommand manages the configuration file.
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write an example configuration file",
				Flags:  []cli.Flag{configFlag()},
				Action: r.ConfigInit,
			},
			{
				Name:  "show",
				Usage: "Print the effective configuration",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ConfigShow,
			},
		},
	}
}
