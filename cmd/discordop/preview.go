package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kashyap-thakar/directus-extension-discord-operation/internal/embed"
	"github.com/kashyap-thakar/directus-extension-discord-operation/internal/operation"
)

func newPreviewCmd(a *app) *cobra.Command {
	in := &optionInput{}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the payload that send would post, without sending it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.resolveOptions(cmd, in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, item := range operation.Overview(opts) {
				fmt.Fprintf(out, "%s: %s\n", item.Label, item.Text)
			}
			return a.writeJSON(out, embed.Build(opts.Intent()))
		},
	}
	addOptionFlags(cmd, in)
	return cmd
}
