package config

import (
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/navinject/internal/foundation/errors"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "navinject.yaml"

const (
	DefaultRoot       = "src/main/resources/FXML"
	DefaultExtension  = ".fxml"
	DefaultStylesheet = "@../../css/navigation.css"
)

// DefaultSkipFiles are the authentication screens that never get a
// navigation bar.
var DefaultSkipFiles = []string{"Login.fxml", "Signup.fxml", "ResetPassword.fxml", "ChangePassword.fxml"}

// Config represents the run parameters of navinject.
type Config struct {
	Root       string   `yaml:"root"`
	Extension  string   `yaml:"extension,omitempty"`
	Stylesheet string   `yaml:"stylesheet,omitempty"`
	SkipFiles  []string `yaml:"skip_files,omitempty"`
	LogLevel   LogLevel `yaml:"log_level,omitempty"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Root:       DefaultRoot,
		Extension:  DefaultExtension,
		Stylesheet: DefaultStylesheet,
		SkipFiles:  slices.Clone(DefaultSkipFiles),
		LogLevel:   LogLevelInfo,
	}
}

// Load reads the configuration at configPath. A missing file yields the
// defaults. Environment variables from .env files are loaded first and
// ${VAR} references in the file are expanded.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse config file").
			WithContext("path", configPath).
			Build()
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Root == "" {
		c.Root = DefaultRoot
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.Stylesheet == "" {
		c.Stylesheet = DefaultStylesheet
	}
	// An explicit empty list disables skipping; only a missing key gets the default.
	if c.SkipFiles == nil {
		c.SkipFiles = slices.Clone(DefaultSkipFiles)
	}
	c.LogLevel = NormalizeLogLevel(string(c.LogLevel))
}

// Validate checks the configuration for values no run could use.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Extension, ".") {
		return errors.ConfigError("extension must start with a dot").
			WithContext("extension", c.Extension).
			Build()
	}
	if strings.ContainsAny(c.Stylesheet, `",`) {
		return errors.ConfigError("stylesheet must not contain quotes or commas").
			WithContext("stylesheet", c.Stylesheet).
			Build()
	}
	for _, name := range c.SkipFiles {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return errors.ConfigError("skip_files entries must be plain file names").
				WithContext("name", name).
				Build()
		}
	}
	return nil
}
