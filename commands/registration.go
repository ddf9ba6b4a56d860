// Package commands exposes the engine's command handlers to host command
// buses, registries, and dispatchers.
package commands

import (
	"errors"
	"time"

	audit "github.com/goliatone/go-content-audit"
	internalcmd "github.com/goliatone/go-content-audit/internal/commands"
	auditcmd "github.com/goliatone/go-content-audit/internal/commands/audit"
	"github.com/goliatone/go-content-audit/pkg/interfaces"
)

// Handler surface re-exported for hosts that dispatch messages directly.
type (
	BuildReportCommand = auditcmd.BuildReportCommand
	BuildReportHandler = auditcmd.BuildReportHandler
	ReportSink         = auditcmd.ReportSink
)

// CommandRegistry records command handlers so hosts can expose them via CLI or cron.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// RegistrationOptions configures how handlers are registered during construction.
type RegistrationOptions struct {
	Registry       CommandRegistry
	Dispatcher     CommandDispatcher
	LoggerProvider interfaces.LoggerProvider
	// ReportSink receives every report built through the command surface.
	ReportSink ReportSink
	// ReportTimeout overrides the default build timeout when positive.
	ReportTimeout time.Duration
}

// RegistrationResult captures the constructed command handlers and any dispatcher subscriptions.
type RegistrationResult struct {
	Handlers      []any
	Subscriptions []CommandSubscription
}

// RegisterEngineCommands builds the command handlers exposed by the provided
// engine and optionally registers them with registry/dispatcher integrations.
func RegisterEngineCommands(engine *audit.Engine, opts RegistrationOptions) (*RegistrationResult, error) {
	if engine == nil {
		return &RegistrationResult{}, errors.New("commands: engine is required")
	}

	provider := opts.LoggerProvider
	if provider == nil {
		provider = engine.LoggerProvider()
	}

	result := &RegistrationResult{
		Handlers:      make([]any, 0),
		Subscriptions: make([]CommandSubscription, 0),
	}

	var errs error

	register := func(handler any) {
		if handler == nil {
			return
		}
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		if opts.Dispatcher != nil {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}
	}

	handlerOpts := []auditcmd.BuildReportOption{}
	if opts.ReportSink != nil {
		handlerOpts = append(handlerOpts, auditcmd.BuildReportWithSink(opts.ReportSink))
	}
	if opts.ReportTimeout > 0 {
		handlerOpts = append(handlerOpts, auditcmd.BuildReportWithTimeout(opts.ReportTimeout))
	}

	register(auditcmd.NewBuildReportHandler(
		engine.Reports(),
		internalcmd.CommandLogger(provider, "report"),
		handlerOpts...,
	))

	return result, errs
}
