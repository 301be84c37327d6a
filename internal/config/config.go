package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Consul KV store address parts. The well-known local agent address
	// is assumed when unset.
	ConsulHost string `env:"CONSUL_HOST" envDefault:"localhost"`
	ConsulPort int    `env:"CONSUL_PORT" envDefault:"8500"`

	// Prefix is the root path for all {prefix}/{key} parameter lookups.
	Prefix string `env:"CONSUL_PREFIX,notEmpty"`

	// Comma-separated check key lists. A mandatory failure is fatal,
	// an optional failure is reported only.
	MandatoryKeys string `env:"CONSUL_MANDATORY_KEYS,notEmpty"`
	OptionalKeys  string `env:"CONSUL_OPTIONAL_KEYS"`

	// ConnectionCheckKey is read once before anything else, purely to
	// prove the KV store itself is reachable.
	ConnectionCheckKey string `env:"CONSUL_CONNECTION_CHECK_KEY,notEmpty"`

	// LogDir enables an additional rotating log file when set; SlackWebhook
	// enables failure alerting. Both are off by default.
	LogDir       string `env:"LOG_DIR"`
	SlackWebhook string `env:"SLACK_WEBHOOK_URL"`
}

func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("load environment: %w", err)
	}
	return cfg, nil
}

// ConsulAddress returns the host:port of the KV store.
func (c Config) ConsulAddress() string {
	return net.JoinHostPort(c.ConsulHost, strconv.Itoa(c.ConsulPort))
}

// MandatoryKeySet splits CONSUL_MANDATORY_KEYS on commas. Splitting stays
// explicit rather than a slice env tag: an empty input must yield a single
// empty key, which the evaluator later skips as unknown.
func (c Config) MandatoryKeySet() []string {
	return strings.Split(c.MandatoryKeys, ",")
}

// OptionalKeySet splits CONSUL_OPTIONAL_KEYS on commas.
func (c Config) OptionalKeySet() []string {
	return strings.Split(c.OptionalKeys, ",")
}
