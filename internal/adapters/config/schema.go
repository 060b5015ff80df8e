package config

// File represents the structure of the optional dpnd.yaml configuration file.
type File struct {
	Git GitSection `yaml:"git"`
	Log LogSection `yaml:"log"`
}

// GitSection configures the git backend.
type GitSection struct {
	// Binary overrides the git executable.
	Binary string `yaml:"binary"`

	// Quiet suppresses streaming of git output to the log.
	Quiet bool `yaml:"quiet"`
}

// LogSection configures log output.
type LogSection struct {
	// JSON forces JSON log output.
	JSON bool `yaml:"json"`
}
