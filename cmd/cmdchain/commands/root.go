package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/viant/cmdchain"
)

type globalOptions struct {
	configURL        string
	logLevelOverride string
	config           *cmdchain.Config
}

func (o *globalOptions) load(ctx context.Context) error {
	if o.configURL == "" {
		o.config = cmdchain.DefaultConfig()
		return nil
	}
	cfg, err := cmdchain.LoadConfig(ctx, nil, o.configURL)
	if err != nil {
		return err
	}
	o.config = cfg
	return nil
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	global := &globalOptions{}
	cmd := &cobra.Command{
		Use:           "cmdchain",
		Short:         "cmdchain - reversible commands and approval chains",
		Long:          `cmdchain replays unit moves through an undo/redo stack and dispatches requests through an approval chain.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := global.load(cmd.Context()); err != nil {
				return err
			}
			return configureLogger(cmd.ErrOrStderr(), global.logLevelOverride)
		},
	}

	cmd.PersistentFlags().StringVar(&global.configURL, "config", "", "Configuration URL (file://, mem://, s3:// ...)")
	cmd.PersistentFlags().StringVar(&global.logLevelOverride, "log-level", "", "Override log level (debug|info|warn|error)")

	cmd.AddCommand(
		NewApproveCmd(global),
		NewMoveCmd(global),
		NewEventsCmd(global),
	)

	return cmd
}
