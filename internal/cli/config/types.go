// Package config provides configuration management for the groupinfo CLI.
//
// Configuration is layered with koanf. Precedence (highest to lowest):
// explicitly set flags, GROUPINFO_* environment variables, groupinfo.yaml,
// built-in defaults.
package config

// LabelsConfig overrides the display labels of scrubbing rule methods and types.
type LabelsConfig struct {
	Methods map[string]string `koanf:"methods"`
	Types   map[string]string `koanf:"types"`
}

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat        string       `koanf:"output"`
	Verbose             bool         `koanf:"verbose"`
	ShowNonContributing bool         `koanf:"show_non_contributing"`
	Language            string       `koanf:"language"`
	Labels              LabelsConfig `koanf:"labels"`

	// Default inputs used when a command is given no file argument.
	GroupingFile string `koanf:"grouping_file"`
	RulesFile    string `koanf:"rules_file"`

	// ProjectDir is the directory the config file was found in, or the
	// working directory when there is none. GroupingFile and RulesFile
	// resolve against it.
	ProjectDir string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultOutput   = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLanguage = "en"
)

// Config file names, in lookup order.
const (
	ConfigFileName    = "groupinfo.yaml"
	ConfigFileNameAlt = "groupinfo.yml"
)

// EnvPrefix is the prefix of configuration environment variables.
const EnvPrefix = "GROUPINFO_"

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		Language:     DefaultLanguage,
	}
}
