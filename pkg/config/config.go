package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mirinda123/MetroDrifter/pkg/util"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir string `yaml:"data_dir" validate:"required"`

	Overpass OverpassConfig `yaml:"overpass"`
	Download DownloadConfig `yaml:"download"`
	WebAPI   WebAPIConfig   `yaml:"web_api"`
}

type OverpassConfig struct {
	Endpoints []string      `yaml:"endpoints" validate:"required,min=1,dive,url"`
	Timeout   time.Duration `yaml:"timeout" validate:"gt=0"`
	UserAgent string        `yaml:"user_agent" validate:"required"`

	// Extra attempts against the same endpoint before moving on to the next one
	RetriesPerEndpoint uint64        `yaml:"retries_per_endpoint"`
	RetryInterval      time.Duration `yaml:"retry_interval" validate:"gte=0"`
}

type DownloadConfig struct {
	DefaultCountries []string            `yaml:"default_countries" validate:"required,min=1,dive,required"`
	CountryAliases   map[string][]string `yaml:"country_aliases"`

	CountryPause        time.Duration `yaml:"country_pause" validate:"gte=0"`
	GeometryBatchPause  time.Duration `yaml:"geometry_batch_pause" validate:"gte=0"`
	GeometryConcurrency int           `yaml:"geometry_concurrency" validate:"gte=1"`
}

type WebAPIConfig struct {
	Listen string `yaml:"listen" validate:"required"`
}

func (c *Config) LinesDir() string {
	return filepath.Join(c.DataDir, "lines")
}

func (c *Config) GeometryDir() string {
	return filepath.Join(c.DataDir, "geometry")
}

func (c *Config) CountriesFile() string {
	return filepath.Join(c.DataDir, "countries.json")
}

func Default() *Config {
	return &Config{
		DataDir: filepath.Join("public", "data"),
		Overpass: OverpassConfig{
			Endpoints: []string{
				"https://overpass-api.de/api/interpreter",
				"https://overpass.kumi.systems/api/interpreter",
			},
			Timeout:            60 * time.Second,
			UserAgent:          "MetroDrifter-Download/1.0 (data mirror script)",
			RetriesPerEndpoint: 0,
			RetryInterval:      2 * time.Second,
		},
		Download: DownloadConfig{
			DefaultCountries: []string{
				"China", "France", "Germany", "United Kingdom", "Japan", "Spain", "Russia",
				"United States", "Italy", "South Korea", "Brazil", "India", "Mexico",
				"Canada", "Australia", "Netherlands", "Switzerland", "Austria", "Belgium",
				"Portugal", "Greece", "Turkey", "Poland", "Czech Republic", "Sweden",
				"Argentina", "Chile", "Colombia", "Egypt", "Iran", "Thailand", "Taiwan",
				"Singapore", "Malaysia", "Indonesia", "Philippines",
			},
			// Overpass area names differ from the common English name for some countries
			CountryAliases: map[string][]string{
				"Czech Republic": {"Czechia"},
			},
			CountryPause:        300 * time.Millisecond,
			GeometryBatchPause:  200 * time.Millisecond,
			GeometryConcurrency: 5,
		},
		WebAPI: WebAPIConfig{
			Listen: ":8080",
		},
	}
}

// Load builds the configuration from the defaults, the optional YAML file at path and the
// METRODRIFTER_ environment variables, in that order of precedence from lowest to highest.
func Load(path string) (*Config, error) {
	cfg := Default()
	env := util.GetEnvironmentVariables()

	if path == "" {
		path = env["METRODRIFTER_CONFIG"]
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvironment(env); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvironment(env map[string]string) error {
	c.DataDir = util.EnvironmentOrDefault(env, "METRODRIFTER_DATA_DIR", c.DataDir)
	c.WebAPI.Listen = util.EnvironmentOrDefault(env, "METRODRIFTER_LISTEN", c.WebAPI.Listen)
	c.Overpass.UserAgent = util.EnvironmentOrDefault(env, "METRODRIFTER_USER_AGENT", c.Overpass.UserAgent)

	if value := env["METRODRIFTER_GEOMETRY_CONCURRENCY"]; value != "" {
		concurrency, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("METRODRIFTER_GEOMETRY_CONCURRENCY: %w", err)
		}
		c.Download.GeometryConcurrency = concurrency
	}

	if value := env["METRODRIFTER_OVERPASS_TIMEOUT"]; value != "" {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("METRODRIFTER_OVERPASS_TIMEOUT: %w", err)
		}
		c.Overpass.Timeout = timeout
	}

	return nil
}

func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
