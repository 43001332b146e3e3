package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultAPIVersion is the Storefront API version used when none is configured.
const DefaultAPIVersion = "2024-04"

// ConfigError reports a missing or malformed configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("config: %s is required", e.Field)
	}
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

// Params holds the raw values a Config is built from.
type Params struct {
	Domain                string
	StorefrontAccessToken string
	APIVersion            string
}

// Config is an immutable, validated storefront configuration.
type Config struct {
	domain      string
	accessToken string
	apiVersion  string
}

// New validates p and returns a Config. Domain must be a bare hostname.
func New(p Params) (Config, error) {
	domain := strings.TrimSpace(p.Domain)
	token := p.StorefrontAccessToken
	version := strings.TrimSpace(p.APIVersion)

	if domain == "" {
		return Config{}, &ConfigError{Field: "domain"}
	}
	if strings.Contains(domain, "://") {
		return Config{}, &ConfigError{Field: "domain", Reason: "must not include a URL scheme"}
	}
	if strings.ContainsAny(domain, "/ ") {
		return Config{}, &ConfigError{Field: "domain", Reason: "must be a bare hostname"}
	}
	if strings.TrimSpace(token) == "" {
		return Config{}, &ConfigError{Field: "storefrontAccessToken"}
	}
	if version == "" {
		version = DefaultAPIVersion
	}

	return Config{domain: domain, accessToken: token, apiVersion: version}, nil
}

// FromViper builds a Config from the shop_domain, storefront_access_token
// and api_version keys.
func FromViper(v *viper.Viper) (Config, error) {
	return New(Params{
		Domain:                v.GetString("shop_domain"),
		StorefrontAccessToken: v.GetString("storefront_access_token"),
		APIVersion:            v.GetString("api_version"),
	})
}

func (c Config) Domain() string { return c.domain }

func (c Config) StorefrontAccessToken() string { return c.accessToken }

func (c Config) APIVersion() string { return c.apiVersion }

// EndpointURL returns https://{domain}/api/{apiVersion}/graphql.
func (c Config) EndpointURL() string {
	return fmt.Sprintf("https://%s/api/%s/graphql", c.domain, c.apiVersion)
}
