package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/germanamz/spoolman-mcp/pkg/tools/mcpclient"
)

func newCallCmd() *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "call <tool> [arguments]",
		Short: "Call a tool on a running HTTP server",
		Long: "Call a tool on a spoolman-mcp server started with serve --http. Arguments are a JSON object.\n" +
			"Without a tool name the server's tool names are listed.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			c, err := mcpclient.NewHTTP(ctx, server, version)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if len(args) == 0 {
				tools, err := c.ListTools(ctx)
				if err != nil {
					return err
				}
				for _, t := range tools {
					fmt.Fprintln(out, t.Name)
				}

				return nil
			}

			var input json.RawMessage
			if len(args) == 2 {
				input = json.RawMessage(args[1])
			}

			result, err := c.CallTool(ctx, args[0], input)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, result)

			return nil
		},
	}

	cmd.Flags().StringVar(&server, "server", "http://localhost:8080", "URL of the streamable HTTP endpoint")

	return cmd
}
