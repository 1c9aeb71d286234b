package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newSendCmd(a *app) *cobra.Command {
	in := &optionInput{}
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message",
		Example: `  discordop send --channel 123 --type simple --message "deploy finished"
  discordop send --channel 123 --type embed --template success --title Deploy --description done --timestamp
  discordop send --options flow-options.json --set embedTitle="Nightly build"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.resolveOptions(cmd, in)
			if err != nil {
				return err
			}
			op, err := a.newOperation()
			if err != nil {
				return err
			}
			res, err := op.Handle(cmd.Context(), opts)
			if err != nil {
				slog.Debug("discord: send failed", "target", opts.Target(), "error", err)
				return err
			}
			return a.writeJSON(cmd.OutOrStdout(), res)
		},
	}
	addOptionFlags(cmd, in)
	return cmd
}
