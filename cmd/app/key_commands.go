package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/apikeygen/cmd/app/commands"
	"github.com/allisson/apikeygen/internal/app"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate",
			Usage: "Generate new API keys and print them",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"n"},
					Value:   1,
					Usage:   "Number of keys to generate",
				},
				&cli.BoolFlag{
					Name:    "copy",
					Aliases: []string{"c"},
					Usage:   "Copy the last generated key to the clipboard",
				},
				&cli.BoolFlag{
					Name:  "hide",
					Usage: "Do not print the keys (useful with --copy)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				format, err := commands.ParseDisplayFormat(cmd.String("format"))
				if err != nil {
					return err
				}

				container, err := newContainer(app.WithDisplayFormat(format))
				if err != nil {
					return err
				}
				logger := container.Logger()
				defer commands.CloseContainer(container, logger)

				keyUseCase, err := container.KeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunGenerateKey(
					ctx,
					keyUseCase,
					logger,
					commands.GenerateOptions{
						Count:    int(cmd.Int("count")),
						MaxCount: container.Config().MaxKeysPerRequest,
						Copy:     cmd.Bool("copy"),
						Visible:  !cmd.Bool("hide"),
					},
				)
			},
		},
		{
			Name:      "copy",
			Usage:     "Copy an API key to the clipboard",
			ArgsUsage: "[KEY]",
			Description: "Copies KEY, or the first line read from stdin when KEY is omitted. " +
				"Failures are reported as a notification.",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				logger := container.Logger()
				defer commands.CloseContainer(container, logger)

				keyUseCase, err := container.KeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunCopyKey(
					ctx,
					keyUseCase,
					logger,
					commands.DefaultIO().Reader,
					cmd.Args().First(),
				)
			},
		},
	}
}
