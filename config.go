package cmdchain

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
	approval "github.com/viant/cmdchain/service/approval"
	"github.com/viant/cmdchain/service/meta"
)

// Config is a serialisable representation of the service configuration. The
// zero value is usable: unbounded history, the standard leave chain and no
// tracing.
type Config struct {
	History  HistoryConfig  `json:"history" yaml:"history"`
	Approval ApprovalConfig `json:"approval" yaml:"approval"`
	Tracing  TracingConfig  `json:"tracing" yaml:"tracing"`
	Events   EventsConfig   `json:"events" yaml:"events"`
}

type HistoryConfig struct {
	Limit int `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// ApprovalConfig selects the chain: an inline description, a URL of one, or
// the standard leave chain when both are empty.
type ApprovalConfig struct {
	ChainURL string           `json:"chainURL,omitempty" yaml:"chainURL,omitempty"`
	Chain    *approval.Config `json:"chain,omitempty" yaml:"chain,omitempty"`
}

type TracingConfig struct {
	Enabled     bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	ServiceName string `json:"serviceName,omitempty" yaml:"serviceName,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
	OutputFile  string `json:"outputFile,omitempty" yaml:"outputFile,omitempty"`
}

// EventsConfig enables durable command and approval event journals under
// URL (commands/ and approvals/ sub folders).
type EventsConfig struct {
	URL        string `json:"url,omitempty" yaml:"url,omitempty"`
	MaxRetries int    `json:"maxRetries,omitempty" yaml:"maxRetries,omitempty"`
}

// DefaultConfig returns a Config with default values. Callers may modify the
// returned struct before passing it to NewFromConfig.
func DefaultConfig() *Config {
	return &Config{
		Tracing: TracingConfig{ServiceName: "cmdchain", Version: "dev"},
		Events:  EventsConfig{MaxRetries: 3},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.History.Limit < 0 {
		errs = append(errs, fmt.Errorf("history.limit must be >= 0"))
	}
	if c.Approval.ChainURL != "" && c.Approval.Chain != nil {
		errs = append(errs, fmt.Errorf("approval.chainURL and approval.chain are mutually exclusive"))
	}
	if c.Approval.Chain != nil {
		if err := c.Approval.Chain.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Events.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("events.maxRetries must be >= 0"))
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		errs = append(errs, fmt.Errorf("tracing.serviceName is required when tracing is enabled"))
	}
	return errors.Join(errs...)
}

// LoadConfig reads a YAML configuration over DefaultConfig; ${env.KEY}
// references are expanded.
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	ret := DefaultConfig()
	if err := meta.New(fs).Load(ctx, URL, ret); err != nil {
		return nil, err
	}
	if err := ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return ret, nil
}
