package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServiceConfig is the optional service.yaml deployment configuration.
type ServiceConfig struct {
	Service struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"service"`
	Server struct {
		CORSOrigins []string `yaml:"cors_origins"`
		RateLimit   struct {
			RPS   float64 `yaml:"rps"`
			Burst int     `yaml:"burst"`
		} `yaml:"rate_limit"`
	} `yaml:"server"`
	Prompts struct {
		TitlesInstruction  string `yaml:"titles_instruction"`
		ContentInstruction string `yaml:"content_instruction"`
	} `yaml:"prompts"`
}

// LoadServiceConfig reads service.yaml from path. A missing file is not
// an error; defaults are returned instead.
func LoadServiceConfig(path string) (*ServiceConfig, error) {
	cfg := defaultServiceConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read service config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse service config %q: %w", path, err)
	}
	if cfg.Service.Name == "" {
		cfg.Service.Name = defaultServiceConfig().Service.Name
	}
	return cfg, nil
}

func defaultServiceConfig() *ServiceConfig {
	cfg := &ServiceConfig{}
	cfg.Service.Name = "PDF + Dynamic Titles API"
	cfg.Service.Description = "Turns PDF documents into grounded blog titles and articles"
	cfg.Server.RateLimit.RPS = 10
	cfg.Server.RateLimit.Burst = 20
	return cfg
}
