package cmd

import (
	"covdelta/internal/adapters/istanbul"
	adapterstorage "covdelta/internal/adapters/storage"
	adaptertools "covdelta/internal/adapters/tools"
	"covdelta/internal/config"
	"covdelta/internal/ports"
)

// Container holds shared dependencies for the commands
type Container struct {
	History     ports.HistoryRepository
	Parser      ports.ReportParser
	ToolChecker ports.ToolChecker
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer() (*Container, error) {
	history, err := adapterstorage.NewSQLiteHistory(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	return &Container{
		History:     history,
		Parser:      istanbul.NewParser(),
		ToolChecker: adaptertools.NewPathChecker(),
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.History != nil {
		return c.History.Close()
	}
	return nil
}
