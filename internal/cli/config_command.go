package cli

import (
	"fmt"
	"io"

	"github.com/Manav279/DailyTracker/internal/config"
)

// ConfigCommand prints the effective configuration as YAML
type ConfigCommand struct {
	config *config.Config
	out    io.Writer
}

// NewConfigCommand creates a new config command handler
func NewConfigCommand(cfg *config.Config, out io.Writer) *ConfigCommand {
	return &ConfigCommand{config: cfg, out: out}
}

// Execute runs the config command
func (c *ConfigCommand) Execute() error {
	data, err := c.config.YAML()
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	_, err = c.out.Write(data)
	return err
}
