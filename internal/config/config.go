// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	GinMode      string        `env:"GIN_MODE" envDefault:"debug"`
	DatabasePath string        `env:"DATABASE_PATH" envDefault:"portfolio.db"`
	DraftTTL     time.Duration `env:"DRAFT_TTL" envDefault:"24h"`

	// OwnerEmail is shown to visitors when the contact form cannot deliver.
	OwnerEmail string `env:"OWNER_EMAIL" envDefault:"me@armaanv.dev"`
	// ToEmail receives contact form submissions; defaults to OwnerEmail.
	ToEmail string `env:"TO_EMAIL"`

	SMTP SMTP `envPrefix:"SMTP_"`
	Log  Log  `envPrefix:"LOG_"`
}

type SMTP struct {
	Host string `env:"HOST" envDefault:"smtp.gmail.com"`
	Port string `env:"PORT" envDefault:"587"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
}

type Log struct {
	Level string `env:"LEVEL" envDefault:"info"`
	JSON  bool   `env:"JSON" envDefault:"false"`
}

// Load reads an optional .env file (or the files listed) into the process
// environment and parses the result.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return Parse()
}

// Parse parses the process environment without touching env files.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ToEmail == "" {
		cfg.ToEmail = cfg.OwnerEmail
	}
	return cfg, nil
}

// Addr is the listen address for gin.
func (c Config) Addr() string {
	return ":" + c.Port
}

// MailConfigured reports whether SMTP credentials were supplied.
func (c Config) MailConfigured() bool {
	return c.SMTP.User != "" && c.SMTP.Pass != ""
}
