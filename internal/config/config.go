package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the tool configuration: collaborator paths, registry image
// and ports. Every field has a working default; the file only overrides.
type Settings struct {
	NginxAvailable string `yaml:"nginx_available"`
	NginxEnabled   string `yaml:"nginx_enabled"`
	TemplatePath   string `yaml:"template_path"`
	LetsencryptDir string `yaml:"letsencrypt_dir"`

	RegistryImage string `yaml:"registry_image"`
	RegistryName  string `yaml:"registry_name"`
	RegistryPort  int    `yaml:"registry_port"`
	DataDir       string `yaml:"data_dir"`
	AuthDir       string `yaml:"auth_dir"`
	AuthRealm     string `yaml:"auth_realm"`
}

// defaultPath is the system-wide settings file. Absence is not an error.
const defaultPath = "/etc/provision/config.yaml"

// New creates Settings with default values.
func New() *Settings {
	return &Settings{
		NginxAvailable: "/etc/nginx/sites-available",
		NginxEnabled:   "/etc/nginx/sites-enabled",
		TemplatePath:   "templates/nginx-site.conf",
		LetsencryptDir: "/etc/letsencrypt/live",

		RegistryImage: "registry:2",
		RegistryName:  "registry",
		RegistryPort:  5000,
		DataDir:       "data",
		AuthDir:       "auth",
		AuthRealm:     "Registry Realm",
	}
}

// Load reads settings from the default path, falling back to defaults when
// no file exists.
func Load() (*Settings, error) {
	return LoadFrom(defaultPath)
}

// LoadFrom reads settings from the given path. A missing file yields the
// defaults; a malformed file is an error.
func LoadFrom(path string) (*Settings, error) {
	s := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return s, nil
}
