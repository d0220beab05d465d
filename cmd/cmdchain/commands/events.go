package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/viant/afs/url"
	approval "github.com/viant/cmdchain/service/approval"
	"github.com/viant/cmdchain/service/command"
	"github.com/viant/cmdchain/service/event"
	fsqueue "github.com/viant/cmdchain/service/messaging/fs"
)

// NewEventsCmd creates the events command
func NewEventsCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "events {commands|approvals}",
		Short:     "Print and acknowledge journaled events",
		Long:      `Drains the event journal configured with events.url, printing one JSON document per event.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"commands", "approvals"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvents(cmd, global, args[0])
		},
	}
}

func runEvents(cmd *cobra.Command, global *globalOptions, journal string) error {
	eventsConfig := global.config.Events
	if eventsConfig.URL == "" {
		return fmt.Errorf("events.url is not configured")
	}
	config := fsqueue.DefaultConfig(url.Join(eventsConfig.URL, journal))
	config.MaxRetries = eventsConfig.MaxRetries
	out := cmd.OutOrStdout()
	switch journal {
	case "commands":
		return drainTo[command.Event](cmd.Context(), config, out)
	case "approvals":
		return drainTo[approval.Event](cmd.Context(), config, out)
	}
	return fmt.Errorf("unknown journal: %s", journal)
}

func drainTo[T any](ctx context.Context, config fsqueue.Config, out io.Writer) error {
	queue, err := fsqueue.NewQueue[T](ctx, nil, config)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(out)
	_, err = event.Drain[T](ctx, queue, func(ctx context.Context, e *T) error {
		return encoder.Encode(e)
	})
	return err
}
