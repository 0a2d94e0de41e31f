package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process-wide settings read once at startup.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// SlackWebhookURL is not validated; when empty every delivery fails.
	SlackWebhookURL string        `env:"SLACK_WEBHOOK_URL"`
	WebhookTimeout  time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"10s"`

	SiteURL    string `env:"SITE_URL" envDefault:"https://auto10x.newdev.it"`
	LandingURL string `env:"LANDING_URL" envDefault:"https://autoflow.newdev.it"`
	Timezone   string `env:"NOTIFY_TIMEZONE" envDefault:"Asia/Seoul"`
	AssetsDir  string `env:"ASSETS_DIR" envDefault:"./assets"`
}

func (c Config) String() string {
	webhook := "{unset}"
	if c.SlackWebhookURL != "" {
		webhook = "{hidden}"
	}
	return fmt.Sprintf("{port:%s, slack_webhook_url:%s, webhook_timeout:%s, site_url:%s, landing_url:%s, timezone:%s, assets_dir:%s}",
		c.Port, webhook, c.WebhookTimeout, c.SiteURL, c.LandingURL, c.Timezone, c.AssetsDir)
}

// Load reads a .env file when one exists and then parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Printf("loaded .env")
	}
	return Parse()
}

// Parse reads Config from the current environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Location resolves the configured notification timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
