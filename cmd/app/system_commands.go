package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/apikeygen/cmd/app/commands"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "serve",
			Usage: "Start the web display and metrics servers",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer commands.CloseContainer(container, container.Logger())

				return commands.RunServer(ctx, container, version)
			},
		},
	}
}
