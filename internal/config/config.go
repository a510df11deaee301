package config

import (
	"fmt"
	"strings"
)

// Defaults applied when the settings file is absent or leaves fields unset.
const (
	DefaultEnvName       = "Kamodo_env"
	DefaultPythonVersion = "3.7"
	DefaultChannel       = "conda-forge"
	DefaultRepoURL       = "https://github.com/nasa/Kamodo.git"
	DefaultCloneDir      = "Kamodo"

	// DefaultFileName is the settings file auto-detected in the working
	// directory when no --config flag is given.
	DefaultFileName = "kamodoctl.json"
)

// DefaultPackages returns the default scientific-computing package list.
// Order is preserved through installation for reproducible logs.
func DefaultPackages() []string {
	return []string{
		"netCDF4", "cdflib", "astropy", "ipython",
		"jupyter", "h5py", "sgp4", "spacepy", "hapiclient",
	}
}

// Config holds the kamodoctl settings.
type Config struct {
	// EnvName is the Conda environment to create, use, and remove.
	EnvName string `mapstructure:"env_name" json:"env_name"`

	// Packages are installed into the environment in order.
	Packages []string `mapstructure:"packages" json:"packages"`

	// PythonVersion pins the interpreter of the created environment.
	PythonVersion string `mapstructure:"python_version" json:"python_version"`

	// Channel is the Conda channel packages are installed from.
	Channel string `mapstructure:"channel" json:"channel"`

	// RepoURL is the Kamodo source repository to clone.
	RepoURL string `mapstructure:"repo_url" json:"repo_url"`

	// CloneDir is the local directory the repository is cloned into.
	CloneDir string `mapstructure:"clone_dir" json:"clone_dir"`
}

// Default returns the configuration used when no settings file exists.
func Default() *Config {
	return &Config{
		EnvName:       DefaultEnvName,
		Packages:      DefaultPackages(),
		PythonVersion: DefaultPythonVersion,
		Channel:       DefaultChannel,
		RepoURL:       DefaultRepoURL,
		CloneDir:      DefaultCloneDir,
	}
}

// applyDefaults fills in any unset fields. A nil Packages slice means the
// field was absent and gets the default list; an explicit empty list is
// kept as-is (zero packages is a valid configuration).
func (c *Config) applyDefaults() {
	if c.EnvName == "" {
		c.EnvName = DefaultEnvName
	}
	if c.Packages == nil {
		c.Packages = DefaultPackages()
	}
	if c.PythonVersion == "" {
		c.PythonVersion = DefaultPythonVersion
	}
	if c.Channel == "" {
		c.Channel = DefaultChannel
	}
	if c.RepoURL == "" {
		c.RepoURL = DefaultRepoURL
	}
	if c.CloneDir == "" {
		c.CloneDir = DefaultCloneDir
	}
}

// Validate checks that the configuration is usable before any external
// tool is invoked.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.EnvName) == "" {
		return fmt.Errorf("env_name must not be empty")
	}
	if strings.ContainsAny(c.EnvName, " \t/") {
		return fmt.Errorf("env_name %q must not contain whitespace or slashes", c.EnvName)
	}
	for i, pkg := range c.Packages {
		if strings.TrimSpace(pkg) == "" {
			return fmt.Errorf("packages[%d] must not be empty", i)
		}
	}
	return nil
}
