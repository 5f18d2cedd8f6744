package glob

import "github.com/uiui611/array-matcher/prefilter"

// Config controls glob compilation.
//
// Example:
//
//	config := glob.DefaultConfig()
//	config.Separator = "\\"
//	g, err := glob.CompileWithConfig(`src\**\*.go`, config)
type Config struct {
	// Separator splits glob strings (and paths given to MatchPath) into
	// segments.
	// Default: "/"
	Separator string

	// EnablePrefilter rejects segments missing a literal run of the segment
	// glob before running the character-level matcher. A segment glob
	// without wildcards is compared by plain equality.
	// Default: true
	EnablePrefilter bool

	// MinLiteralLen is the shortest literal run used by the prefilter.
	// Default: 2
	MinLiteralLen int
}

// DefaultConfig returns a configuration with the default values.
func DefaultConfig() Config {
	return Config{
		Separator:       "/",
		EnablePrefilter: true,
		MinLiteralLen:   prefilter.DefaultMinLiteralLen,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Separator == "" {
		return &ConfigError{Field: "Separator", Reason: "must not be empty"}
	}
	if c.MinLiteralLen < 1 {
		return &ConfigError{Field: "MinLiteralLen", Reason: "must be at least 1"}
	}
	return nil
}
