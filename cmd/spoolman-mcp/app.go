package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/germanamz/spoolman-mcp/pkg/config"
	"github.com/germanamz/spoolman-mcp/pkg/logging"
	"github.com/germanamz/spoolman-mcp/pkg/spoolman/client"
	"github.com/germanamz/spoolman-mcp/pkg/spoolman/tools"
	"github.com/germanamz/spoolman-mcp/pkg/telemetry"
	"github.com/germanamz/spoolman-mcp/pkg/tools/toolbox"
)

// app holds everything a command needs once the configuration is resolved.
type app struct {
	cfg   config.Config
	log   *slog.Logger
	tools *toolbox.ToolBox

	closers []func(context.Context) error
}

// loadConfig resolves the configuration: .env first, then the YAML file and
// the environment, then the command-line overrides.
func loadConfig(flags *globalFlags) (config.Config, error) {
	if err := config.LoadDotEnv(flags.env); err != nil {
		return config.Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg, err := config.Load(flags.config)
	if err != nil {
		return config.Config{}, err
	}

	if flags.logFile != "" {
		cfg.LogFile = flags.logFile
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func newApp(ctx context.Context, flags *globalFlags) (*app, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}

	writer, closeLog, err := logging.Open(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func(context.Context) error { return closeLog() })
	a.log = logging.New(logging.Options{Level: cfg.LogLevel, Writer: writer, Component: "spoolman-mcp"})

	shutdown, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	a.closers = append(a.closers, shutdown)

	observer, err := telemetry.NewGlobalObserver()
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	c, err := client.New(cfg.BaseURL(), client.WithHTTPClient(&http.Client{
		Transport: telemetry.Transport(nil),
		Timeout:   cfg.HTTPTimeout,
	}))
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	a.tools, err = selectTools(tools.New(c, tools.WithLogger(a.log), tools.WithObserver(observer)).Tools(), cfg.Tools)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	return a, nil
}

// selectTools narrows tb to names. Every name must exist.
func selectTools(tb *toolbox.ToolBox, names []string) (*toolbox.ToolBox, error) {
	for _, name := range names {
		if _, ok := tb.Get(name); !ok {
			return nil, fmt.Errorf("config: unknown tool %q", name)
		}
	}

	return tb.Filter(names), nil
}

// Close releases the resources in reverse order of acquisition.
func (a *app) Close(ctx context.Context) error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil

	return first
}
