package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/cmdchain"
	approval "github.com/viant/cmdchain/service/approval"
)

type approveOptions struct {
	magnitude   int
	chainURL    string
	code        string
	kind        string
	description string
}

type approveResult struct {
	Request *approval.Request `json:"request"`
	Outcome *approval.Outcome `json:"outcome"`
}

// NewApproveCmd creates the approve command
func NewApproveCmd(global *globalOptions) *cobra.Command {
	opts := &approveOptions{}
	cmd := &cobra.Command{
		Use:   "approve",
		Short: "Dispatch a request through the approval chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApprove(cmd, global, opts)
		},
	}
	cmd.Flags().IntVar(&opts.magnitude, "magnitude", 0, "Request magnitude, e.g. days of leave")
	cmd.Flags().StringVar(&opts.chainURL, "chain", "", "Chain description URL, the standard leave chain otherwise")
	cmd.Flags().StringVar(&opts.code, "code", "", "Request code")
	cmd.Flags().StringVar(&opts.kind, "type", "", "Request type")
	cmd.Flags().StringVar(&opts.description, "description", "", "Request description")
	_ = cmd.MarkFlagRequired("magnitude")
	return cmd
}

func runApprove(cmd *cobra.Command, global *globalOptions, opts *approveOptions) error {
	ctx := cmd.Context()
	cfg := *global.config
	if opts.chainURL != "" {
		cfg.Approval = cmdchain.ApprovalConfig{ChainURL: opts.chainURL}
	}
	srv, err := cmdchain.NewFromConfig(ctx, &cfg)
	if err != nil {
		return err
	}
	request := &approval.Request{
		Code:        opts.code,
		Type:        opts.kind,
		Description: opts.description,
		Magnitude:   opts.magnitude,
	}
	outcome, err := srv.Approvals().Submit(ctx, request)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(&approveResult{Request: request, Outcome: outcome}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
