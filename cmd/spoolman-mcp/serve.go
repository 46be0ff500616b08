package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/germanamz/spoolman-mcp/pkg/tools/mcpserver"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Spoolman tools over MCP",
		Long:  "Serve the Spoolman tools over MCP on stdio, or over streamable HTTP when --http or the listen setting is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, flags)
			if err != nil {
				return err
			}
			defer func() {
				closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = a.Close(closeCtx)
			}()

			if listen == "" {
				listen = a.cfg.Listen
			}

			srv := mcpserver.New("spoolman-mcp", version)
			srv.Register(a.tools.Tools()...)

			if listen != "" {
				a.log.InfoContext(ctx, "serving", "transport", "http", "addr", listen, "spoolman", a.cfg.BaseURL())
				return srv.ListenAndServe(ctx, listen)
			}

			a.log.InfoContext(ctx, "serving", "transport", "stdio", "spoolman", a.cfg.BaseURL())

			return srv.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&listen, "http", "", "serve streamable HTTP on this address instead of stdio, e.g. :8080")

	return cmd
}
