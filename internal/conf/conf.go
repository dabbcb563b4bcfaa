package conf

import (
	"net/url"
	"strings"
	"time"

	"toncenter-client/toncenter"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/pkg/errors"
)

// EnvPrefix selects the environment variables visible to ${KEY} placeholders
// in the config file, e.g. TONCENTER_API_KEY is referenced as ${API_KEY}.
const EnvPrefix = "TONCENTER_"

const defaultTimeout = 30 * time.Second

type Bootstrap struct {
	Logger    *Logger    `json:"logger"`
	Toncenter *Toncenter `json:"toncenter"`
}

type Logger struct {
	DEBUG    bool   `json:"debug"`
	FileName string `json:"file_name"`
	Level    string `json:"level"`
}

type Toncenter struct {
	Network    string `json:"network"`
	BaseURL    string `json:"base_url"`
	APIKey     string `json:"api_key"`
	APIKeyType string `json:"api_key_type"`
	Timeout    string `json:"timeout"`
}

// Load reads the config file (or directory) at path, overlays the TONCENTER_
// environment and validates the result.
func Load(path string) (*Bootstrap, error) {
	c := config.New(
		config.WithSource(
			file.NewSource(path),
			env.NewSource(EnvPrefix),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	var bc Bootstrap
	if err := c.Scan(&bc); err != nil {
		return nil, errors.Wrap(err, "scan config")
	}
	bc.applyDefaults()
	if err := bc.Validate(); err != nil {
		return nil, err
	}
	return &bc, nil
}

func (b *Bootstrap) applyDefaults() {
	if b.Logger == nil {
		b.Logger = &Logger{}
	}
	if strings.TrimSpace(b.Logger.FileName) == "" {
		b.Logger.FileName = "stderr"
	}
	if strings.TrimSpace(b.Logger.Level) == "" {
		b.Logger.Level = "info"
	}
	if b.Toncenter == nil {
		b.Toncenter = &Toncenter{}
	}
}

func (b *Bootstrap) Validate() error {
	return b.Toncenter.Validate()
}

func (t *Toncenter) Validate() error {
	if _, err := toncenter.ParseNetwork(t.Network); err != nil {
		return errors.WithMessage(err, "toncenter.network")
	}
	if _, err := toncenter.ParseAPIKeyType(t.APIKeyType); err != nil {
		return errors.WithMessage(err, "toncenter.api_key_type")
	}
	if t.BaseURL != "" {
		u, err := url.Parse(t.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.Errorf("toncenter.base_url is invalid: %s", t.BaseURL)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.New("toncenter.base_url must use http/https")
		}
	}
	if _, err := t.TimeoutDuration(); err != nil {
		return errors.WithMessage(err, "toncenter.timeout")
	}
	return nil
}

// TimeoutDuration is the HTTP client timeout; 30s when unset.
func (t *Toncenter) TimeoutDuration() (time.Duration, error) {
	if strings.TrimSpace(t.Timeout) == "" {
		return defaultTimeout, nil
	}
	d, err := time.ParseDuration(t.Timeout)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, errors.Errorf("must be positive, got %s", t.Timeout)
	}
	return d, nil
}

// Key returns the credential, or nil when no key is configured.
func (t *Toncenter) Key() *toncenter.APIKey {
	if strings.TrimSpace(t.APIKey) == "" {
		return nil
	}
	kind, _ := toncenter.ParseAPIKeyType(t.APIKeyType)
	return &toncenter.APIKey{Type: kind, Key: strings.TrimSpace(t.APIKey)}
}

// Endpoint returns the base URL override or the network's API root.
func (t *Toncenter) Endpoint() string {
	if t.BaseURL != "" {
		return t.BaseURL
	}
	network, _ := toncenter.ParseNetwork(t.Network)
	return network.BaseURL()
}
