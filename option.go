package cmdchain

import (
	"log/slog"

	"github.com/viant/afs"
	approval "github.com/viant/cmdchain/service/approval"
	"github.com/viant/cmdchain/service/command"
	"github.com/viant/cmdchain/service/messaging"
	"github.com/viant/cmdchain/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises a Service.
type Option func(s *Service)

// WithConfig sets the configuration; DefaultConfig is used otherwise.
func WithConfig(config *Config) Option {
	return func(s *Service) { s.config = config }
}

// WithFs sets the file system used to load chain descriptions.
func WithFs(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}

// WithLogger sets the logger shared by every component.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithChain sets a prebuilt chain, overriding the configured one.
func WithChain(chain *approval.Chain) Option {
	return func(s *Service) { s.chain = chain }
}

// WithApprovalService sets the approval ledger.
func WithApprovalService(svc approval.Service) Option {
	return func(s *Service) { s.approvals = svc }
}

// WithCommandQueue publishes command events to queue.
func WithCommandQueue(queue messaging.Queue[command.Event]) Option {
	return func(s *Service) { s.commandQueue = queue }
}

// WithApprovalQueue publishes approval events to queue.
func WithApprovalQueue(queue messaging.Queue[approval.Event]) Option {
	return func(s *Service) { s.approvalQueue = queue }
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied file path. The first
// successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
