package schema

// Configuration represents the schema for the `docstream.yaml` CLI config.
type Configuration struct {
	Logs  Logs  `yaml:"logs,omitempty" json:"logs,omitempty" mapstructure:"logs"`
	Fetch Fetch `yaml:"fetch,omitempty" json:"fetch,omitempty" mapstructure:"fetch"`
}

// Logs configures log verbosity and destination.
type Logs struct {
	File  string `yaml:"file" json:"file" mapstructure:"file"`
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}

// Fetch configures how document sources are retrieved.
type Fetch struct {
	// Command names an external helper. When set, fetches run
	// `<command> <location>` and read the payload from its stdout instead
	// of using the built-in client.
	Command string `yaml:"command,omitempty" json:"command,omitempty" mapstructure:"command"`

	// TimeoutSeconds bounds a single fetch. Zero, the default, lets a
	// fetch run as long as it takes.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty" json:"timeout_seconds,omitempty" mapstructure:"timeout_seconds"`
}
