package arraymatcher

import (
	"github.com/uiui611/array-matcher/glob"
	"github.com/uiui611/array-matcher/selector"
)

// Config groups the front end configurations.
//
// Example:
//
//	config := arraymatcher.DefaultConfig()
//	config.Glob.Separator = `\`
//	g, err := arraymatcher.GlobWithConfig(`C:\**\*.txt`, config)
type Config struct {
	// Glob configures Glob and GlobWithConfig.
	Glob glob.Config

	// Selector configures QuerySelectorWithConfig.
	Selector selector.Config
}

// DefaultConfig returns a configuration with the default values.
func DefaultConfig() Config {
	return Config{
		Glob:     glob.DefaultConfig(),
		Selector: selector.DefaultConfig(),
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if err := c.Glob.Validate(); err != nil {
		return err
	}
	return c.Selector.Validate()
}
