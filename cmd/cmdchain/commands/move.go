package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/cmdchain"
	"github.com/viant/cmdchain/model/unit"
	"github.com/viant/cmdchain/service/command"
	"github.com/viant/cmdchain/service/input"
)

type moveOptions struct {
	name string
	x, y int
}

// NewMoveCmd creates the move command
func NewMoveCmd(global *globalOptions) *cobra.Command {
	opts := &moveOptions{}
	cmd := &cobra.Command{
		Use:     "move [intent...]",
		Short:   "Replay intents (up, down, left, right, undo, redo) for a unit",
		Example: "cmdchain move --x 2 up up left undo redo",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(cmd, global, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.name, "name", "scout", "Unit name")
	cmd.Flags().IntVar(&opts.x, "x", 0, "Starting column")
	cmd.Flags().IntVar(&opts.y, "y", 0, "Starting row")
	return cmd
}

func runMove(cmd *cobra.Command, global *globalOptions, opts *moveOptions, args []string) error {
	intents := make([]input.Intent, 0, len(args))
	for _, arg := range args {
		intent, err := input.ParseIntent(arg)
		if err != nil {
			return err
		}
		intents = append(intents, intent)
	}
	srv, err := cmdchain.NewFromConfig(cmd.Context(), global.config)
	if err != nil {
		return err
	}
	selected := srv.Spawn(opts.name, unit.Position{X: opts.x, Y: opts.y})
	handler := srv.Input(func() *unit.Unit { return selected })
	runErr := handler.HandleAll(cmd.Context(), intents...)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s at %s\n", selected.Name, selected.Position())
	stack := srv.Commands()
	fmt.Fprintf(out, "undo: %d, redo: %d\n", stack.Len(), stack.RedoLen())
	for i, executed := range stack.History() {
		fmt.Fprintf(out, "  %d. %s\n", i+1, command.NameOf(executed))
	}
	return runErr
}
