package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/fadilmartias/useresume-gateway/internal/errors"
)

// File is the optional YAML configuration. Every key maps to one
// environment variable; the environment always wins over the file.
type File struct {
	App struct {
		Name string `yaml:"name"`
		Env  string `yaml:"env"`
		Port string `yaml:"port"`
	} `yaml:"app"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	UseResume struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"useresume"`
	RateLimit struct {
		Max    int    `yaml:"max"`
		Window string `yaml:"window"`
	} `yaml:"rate_limit"`
}

// LoadFile parses the YAML file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return &f, nil
}

// Env lists the environment variables the file sets.
func (f *File) Env() map[string]string {
	env := map[string]string{
		"APP_NAME":            f.App.Name,
		"APP_ENV":             f.App.Env,
		"APP_PORT":            f.App.Port,
		"LOG_LEVEL":           f.Log.Level,
		"LOG_FORMAT":          f.Log.Format,
		"RESUME_API_KEY":      f.UseResume.APIKey,
		"RESUME_API_BASE_URL": f.UseResume.BaseURL,
		"RATE_LIMIT_WINDOW":   f.RateLimit.Window,
	}
	if f.RateLimit.Max > 0 {
		env["RATE_LIMIT_MAX"] = strconv.Itoa(f.RateLimit.Max)
	}
	return env
}

// ApplyFile seeds unset environment variables from the YAML file at path.
// It must run before the first Load*Config call.
func ApplyFile(path string) error {
	f, err := LoadFile(path)
	if err != nil {
		return err
	}
	for key, value := range f.Env() {
		if value == "" {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return errors.Wrapf(err, "failed to set %s", key)
		}
	}
	return nil
}
