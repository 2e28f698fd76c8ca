package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/navinject/internal/foundation/errors"
)

const initHeader = `# navinject configuration
# Values may reference environment variables as ${VAR}.
`

// Init creates a new configuration file holding the defaults.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.NewError(errors.CategoryAlreadyExists, "configuration file already exists (use --force to overwrite)").
			UserAction().
			WithContext("path", configPath).
			Build()
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}

	if err := os.WriteFile(configPath, append([]byte(initHeader), data...), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
