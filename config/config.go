// Package config loads the server configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"nyiyui.ca/flight-delay/form"
)

const (
	DefaultBind       = "127.0.0.1:8080"
	DefaultDBPath     = "db.sqlite3"
	DefaultPredictURL = "http://127.0.0.1:8000/predict"
)

// Config is the server configuration. AdminUser is the GitHub login allowed to see
// the history and has no default.
type Config struct {
	Bind       string `yaml:"bind"`
	DBPath     string `yaml:"db_path"`
	PredictURL string `yaml:"predict_url"`
	AdminUser  string `yaml:"admin_user"`
	// Disclaimer is Markdown shown under the form.
	Disclaimer string   `yaml:"disclaimer"`
	Airports   []string `yaml:"airports"`
	Carriers   []string `yaml:"carriers"`
}

func Default() *Config {
	codes := form.DefaultCodes()
	return &Config{
		Bind:       DefaultBind,
		DBPath:     DefaultDBPath,
		PredictURL: DefaultPredictURL,
		Disclaimer: form.Message(form.MsgDisclaimer),
		Airports:   codes.Airports,
		Carriers:   codes.Carriers,
	}
}

// Load reads the YAML file at path on top of Default. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.normalize(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Config) normalize() error {
	d := Default()
	if c.Bind == "" {
		c.Bind = d.Bind
	}
	if c.DBPath == "" {
		c.DBPath = d.DBPath
	}
	if c.PredictURL == "" {
		c.PredictURL = d.PredictURL
	}
	c.AdminUser = strings.TrimSpace(c.AdminUser)
	if len(c.Airports) == 0 {
		c.Airports = d.Airports
	}
	if len(c.Carriers) == 0 {
		c.Carriers = d.Carriers
	}
	c.Airports = upperAll(c.Airports)
	c.Carriers = upperAll(c.Carriers)
	if len(c.Airports) < 2 {
		return errors.New("at least two airports are needed")
	}
	return nil
}

func upperAll(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			out = append(out, code)
		}
	}
	return out
}

func (c *Config) Codes() form.Codes {
	return form.Codes{Airports: c.Airports, Carriers: c.Carriers}
}
