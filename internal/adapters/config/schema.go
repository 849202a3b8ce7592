package config

// Freezefile represents the structure of the freeze.yaml configuration file.
// Packager flags are deliberately absent: they cannot be configured.
type Freezefile struct {
	Interpreter string   `yaml:"interpreter"`
	Script      string   `yaml:"script"`
	Resource    string   `yaml:"resource"`
	Packages    []string `yaml:"packages"`
	OutputDir   string   `yaml:"outputDir"`
	WorkDir     string   `yaml:"workDir"`
}
