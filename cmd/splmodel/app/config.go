package app

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// ConfigFile is the name of the configuration file looked up in the
// home and working directories.
const ConfigFile = ".splmodel.yaml"

type Config struct {
	Strict         *bool   `json:"strict,omitempty"`
	Output         *string `json:"output,omitempty"`
	SchemaLocation *string `json:"schemaLocation,omitempty"`
}

func (c *Config) strict() bool { return c.Strict == nil || *c.Strict }

func (c *Config) output() string {
	if c.Output == nil {
		return ""
	}
	return *c.Output
}

func (c *Config) schemaLocation() string {
	if c.SchemaLocation == nil {
		return ""
	}
	return *c.SchemaLocation
}

// GetConfig merges the home directory config file, the working
// directory config file and the SPLMODEL_STRICT and SPLMODEL_OUTPUT
// environment variables, later sources taking precedence. The returned
// config is usable even when err is non-nil.
func GetConfig(fs vfs.FileSystem) (*Config, error) {
	var cfg Config
	var errs []error

	paths := []string{ConfigFile}
	if dir, err := os.UserHomeDir(); err == nil {
		paths = append([]string{filepath.Join(dir, ConfigFile)}, paths...)
	}
	for _, path := range paths {
		add, err := ReadConfig(fs, path)
		if err != nil {
			errs = append(errs, err)
		}
		MergeConfig(&cfg, add)
	}

	if v := os.Getenv("SPLMODEL_STRICT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, errors.Wrap(err, "SPLMODEL_STRICT"))
		} else {
			cfg.Strict = &b
		}
	}
	if v := os.Getenv("SPLMODEL_OUTPUT"); v != "" {
		cfg.Output = &v
	}
	if len(errs) > 0 {
		return &cfg, errs[0]
	}
	return &cfg, nil
}

// ReadConfig reads a config file, expanding ${VAR} references from the
// environment. A missing file yields a nil config.
func ReadConfig(fs vfs.FileSystem, path string) (*Config, error) {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		if vfs.IsErrNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	expanded, err := envsubst.EvalEnv(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "expand config %s", path)
	}

	var cfg Config
	if err := yaml.UnmarshalStrict([]byte(expanded), &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return &cfg, nil
}

func MergeConfig(cfg *Config, add *Config) {
	if add == nil {
		return
	}
	if add.Strict != nil {
		cfg.Strict = add.Strict
	}
	if add.Output != nil {
		cfg.Output = add.Output
	}
	if add.SchemaLocation != nil {
		cfg.SchemaLocation = add.SchemaLocation
	}
}
