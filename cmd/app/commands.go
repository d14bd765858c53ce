package main

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/apikeygen/internal/app"
	"github.com/allisson/apikeygen/internal/config"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getKeyCommands()...)
	cmds = append(cmds, getSystemCommands(version)...)
	return cmds
}

// newContainer loads and validates the configuration before building the container.
func newContainer(opts ...app.ContainerOption) (*app.Container, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return app.NewContainer(cfg, opts...), nil
}
