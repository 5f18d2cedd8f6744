package selector

// Config controls how the object field adapter reads map objects.
//
// Objects implementing Tagged, Identified, Classed or ClassTester are read
// through those methods; the keys below only apply to map[string]any and
// map[string]string objects, such as decoded JSON.
type Config struct {
	// TagField is the key holding the tag name.
	// Default: "tagName"
	TagField string

	// IDField is the key holding the identity.
	// Default: "id"
	IDField string

	// ClassField is the key holding the class list.
	// Default: "classList"
	ClassField string
}

// DefaultConfig returns a configuration with the default values.
func DefaultConfig() Config {
	return Config{
		TagField:   "tagName",
		IDField:    "id",
		ClassField: "classList",
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	switch {
	case c.TagField == "":
		return &ConfigError{Field: "TagField", Reason: "must not be empty"}
	case c.IDField == "":
		return &ConfigError{Field: "IDField", Reason: "must not be empty"}
	case c.ClassField == "":
		return &ConfigError{Field: "ClassField", Reason: "must not be empty"}
	}
	return nil
}
