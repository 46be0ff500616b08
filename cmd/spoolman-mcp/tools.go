package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/germanamz/spoolman-mcp/pkg/tools/toolbox"
)

func newToolsCmd(flags *globalFlags) *cobra.Command {
	var names bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Print the exposed tools and their input schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close(ctx) }()

			out := cmd.OutOrStdout()

			if names {
				for _, t := range a.tools.Tools() {
					fmt.Fprintln(out, t.Name)
				}

				return nil
			}

			entries := make([]toolbox.Descriptor, 0)
			for _, t := range a.tools.Tools() {
				entries = append(entries, t.Descriptor())
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")

			return enc.Encode(entries)
		},
	}

	cmd.Flags().BoolVar(&names, "names", false, "print only the tool names")

	return cmd
}
