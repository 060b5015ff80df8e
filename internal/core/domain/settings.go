package domain

// Settings holds the optional tool configuration loaded from dpnd.yaml.
type Settings struct {
	// GitBinary overrides the git executable used by the VCS backend.
	GitBinary string

	// Quiet suppresses streaming of VCS subprocess output to the log.
	Quiet bool

	// JSONLogs forces JSON log output regardless of terminal detection.
	JSONLogs bool
}

// DefaultSettings returns the settings used when no dpnd.yaml is present.
func DefaultSettings() *Settings {
	return &Settings{GitBinary: "git"}
}
