package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kashyap-thakar/directus-extension-discord-operation/internal/embed"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List embed templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tLABEL\tCOLOR\tFOOTER")
			for _, t := range embed.Templates() {
				footer := "-"
				if t.Footer != nil {
					footer = t.Footer.Text
				}
				fmt.Fprintf(tw, "%s\t%s\t%d (#%06X)\t%s\n", t.Key, t.Label, t.Color, t.Color, footer)
			}
			return tw.Flush()
		},
	}
}
