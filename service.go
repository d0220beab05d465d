package cmdchain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/cmdchain/model/unit"
	approval "github.com/viant/cmdchain/service/approval"
	"github.com/viant/cmdchain/service/approval/leave"
	amemory "github.com/viant/cmdchain/service/approval/memory"
	"github.com/viant/cmdchain/service/command"
	"github.com/viant/cmdchain/service/input"
	"github.com/viant/cmdchain/service/messaging"
	fsqueue "github.com/viant/cmdchain/service/messaging/fs"
	"github.com/viant/cmdchain/tracing"
)

// Service wires a command stack and an approval ledger.
type Service struct {
	config        *Config
	fs            afs.Service
	logger        *slog.Logger
	stack         *command.Stack
	chain         *approval.Chain
	approvals     approval.Service
	commandQueue  messaging.Queue[command.Event]
	approvalQueue messaging.Queue[approval.Event]
}

func (s *Service) init(ctx context.Context, options []Option) error {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	if err := s.config.Validate(); err != nil {
		return err
	}
	if tc := s.config.Tracing; tc.Enabled {
		if err := tracing.Init(tc.ServiceName, tc.Version, tc.OutputFile); err != nil {
			return fmt.Errorf("failed to init tracing: %w", err)
		}
	}

	if err := s.ensureJournals(ctx); err != nil {
		return err
	}

	commandOptions := []command.Option{command.WithLimit(s.config.History.Limit), command.WithLogger(s.logger)}
	if s.commandQueue != nil {
		commandOptions = append(commandOptions, command.WithQueue(s.commandQueue))
	}
	s.stack = command.New(commandOptions...)

	if s.approvals != nil {
		if s.chain == nil {
			s.chain = s.approvals.Chain()
		}
		return nil
	}
	if s.chain == nil {
		chain, err := s.buildChain(ctx)
		if err != nil {
			return err
		}
		s.chain = chain
	}
	ledgerOptions := []amemory.Option{amemory.WithLogger(s.logger)}
	if s.approvalQueue != nil {
		ledgerOptions = append(ledgerOptions, amemory.WithQueue(s.approvalQueue))
	}
	s.approvals = amemory.New(s.chain, ledgerOptions...)
	return nil
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
}

// ensureJournals attaches file system queues for events when configured and
// no queue was supplied.
func (s *Service) ensureJournals(ctx context.Context) error {
	events := s.config.Events
	if events.URL == "" {
		return nil
	}
	if s.commandQueue == nil {
		config := fsqueue.DefaultConfig(url.Join(events.URL, "commands"))
		config.MaxRetries = events.MaxRetries
		queue, err := fsqueue.NewQueue[command.Event](ctx, s.fs, config)
		if err != nil {
			return fmt.Errorf("failed to create command journal: %w", err)
		}
		s.commandQueue = queue
	}
	if s.approvalQueue == nil {
		config := fsqueue.DefaultConfig(url.Join(events.URL, "approvals"))
		config.MaxRetries = events.MaxRetries
		queue, err := fsqueue.NewQueue[approval.Event](ctx, s.fs, config)
		if err != nil {
			return fmt.Errorf("failed to create approval journal: %w", err)
		}
		s.approvalQueue = queue
	}
	return nil
}

func (s *Service) buildChain(ctx context.Context) (*approval.Chain, error) {
	chainOption := approval.WithLogger(s.logger)
	chainConfig := s.config.Approval.Chain
	if URL := s.config.Approval.ChainURL; URL != "" {
		loaded, err := approval.LoadConfig(ctx, s.fs, URL)
		if err != nil {
			return nil, err
		}
		chainConfig = loaded
	}
	if chainConfig == nil {
		return leave.Standard(chainOption)
	}
	chain, err := chainConfig.Build(chainOption)
	if err != nil {
		return nil, fmt.Errorf("failed to build chain %s: %w", chainConfig.Name, err)
	}
	return chain, nil
}

// CommandQueue returns the command event queue, nil when events are disabled.
func (s *Service) CommandQueue() messaging.Queue[command.Event] { return s.commandQueue }

// Commands returns the shared command stack.
func (s *Service) Commands() *command.Stack { return s.stack }

// Input returns an intent handler driving the shared stack.
func (s *Service) Input(selector input.Selector, options ...input.Option) *input.Handler {
	options = append([]input.Option{input.WithStack(s.stack), input.WithLogger(s.logger)}, options...)
	return input.New(selector, options...)
}

// Approvals returns the approval ledger.
func (s *Service) Approvals() approval.Service { return s.approvals }

// Chain returns the approval chain.
func (s *Service) Chain() *approval.Chain { return s.chain }

// Config returns the effective configuration.
func (s *Service) Config() *Config { return s.config }

// Spawn creates a unit; a convenience for callers driving Input.
func (s *Service) Spawn(name string, at unit.Position) *unit.Unit {
	u := unit.New(name, at)
	s.logger.Debug("unit spawned", "unit", u.ID, "name", name, "at", at.String())
	return u
}

// New creates a service.
func New(options ...Option) (*Service, error) {
	return NewWithContext(context.Background(), options...)
}

// NewWithContext creates a service; ctx bounds loading of a remote chain.
func NewWithContext(ctx context.Context, options ...Option) (*Service, error) {
	ret := &Service{}
	if err := ret.init(ctx, options); err != nil {
		return nil, err
	}
	return ret, nil
}

// NewFromConfig creates a service from config.
func NewFromConfig(ctx context.Context, config *Config, options ...Option) (*Service, error) {
	return NewWithContext(ctx, append([]Option{WithConfig(config)}, options...)...)
}
