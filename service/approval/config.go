package approval

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/viant/afs"
	"github.com/viant/cmdchain/service/meta"
	"gopkg.in/yaml.v3"
)

// HandlerConfig declares one handler. Exactly one of Below or Expression is set.
type HandlerConfig struct {
	Name       string `json:"name" yaml:"name" validate:"required"`
	Approver   string `json:"approver,omitempty" yaml:"approver,omitempty"`
	Below      *int   `json:"below,omitempty" yaml:"below,omitempty" validate:"required_without=Expression,excluded_with=Expression"`
	Expression string `json:"expression,omitempty" yaml:"expression,omitempty" validate:"required_without=Below"`
}

// Predicate compiles the configured predicate.
func (h *HandlerConfig) Predicate() (Predicate, error) {
	if h.Below != nil {
		return Below(*h.Below), nil
	}
	return Expression(h.Expression)
}

// Config is the serialisable description of a chain. An empty Order links
// handlers in declaration order.
type Config struct {
	Name     string          `json:"name,omitempty" yaml:"name,omitempty"`
	Handlers []HandlerConfig `json:"handlers" yaml:"handlers" validate:"min=1,unique=Name,dive"`
	Order    []string        `json:"order,omitempty" yaml:"order,omitempty" validate:"unique,dive,required"`
}

var validate = validator.New()

// Validate checks the declarative constraints; link resolution is left to Build.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("approval config was nil")
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid approval config %s: %w", c.Name, err)
	}
	return nil
}

// Builder compiles predicates and returns a builder wired in Order.
func (c *Config) Builder() (*Builder, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	builder := NewBuilder()
	names := make([]string, 0, len(c.Handlers))
	for i := range c.Handlers {
		handlerConfig := &c.Handlers[i]
		predicate, err := handlerConfig.Predicate()
		if err != nil {
			return nil, fmt.Errorf("handler %s: %w", handlerConfig.Name, err)
		}
		builder.Add(NewHandler(handlerConfig.Name, handlerConfig.Approver, predicate))
		names = append(names, handlerConfig.Name)
	}
	order := c.Order
	if len(order) == 0 {
		order = names
	}
	return builder.Sequence(order...), nil
}

// Build is a shortcut for Builder followed by Build.
func (c *Config) Build(options ...ChainOption) (*Chain, error) {
	builder, err := c.Builder()
	if err != nil {
		return nil, err
	}
	return builder.Build(options...)
}

// DecodeConfig decodes and validates a YAML (or JSON) chain description.
func DecodeConfig(data []byte) (*Config, error) {
	ret := &Config{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode approval config: %w", err)
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// LoadConfig loads a chain description from any afs-supported URL
// (file://, mem://, s3://, gs:// ...). ${env.KEY} references are expanded.
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := meta.New(fs).Download(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load approval config: %w", err)
	}
	ret, err := DecodeConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", URL, err)
	}
	return ret, nil
}
