// Package tools exposes the Spoolman REST API as a set of tools.
//
// Every tool follows the same path: the raw arguments are validated against
// the operation's schema, turned into exactly one backend request, and the
// backend's JSON body is returned as the tool result. Validation failures
// never reach the network; backend and transport failures are returned with
// the tool name and are not retried.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/germanamz/spoolman-mcp/pkg/spoolman/client"
	"github.com/germanamz/spoolman-mcp/pkg/spoolman/schema"
	"github.com/germanamz/spoolman-mcp/pkg/telemetry"
	"github.com/germanamz/spoolman-mcp/pkg/tools/toolbox"
)

// Toolset builds the Spoolman tools around one backend client.
type Toolset struct {
	client   *client.Client
	log      *slog.Logger
	observer *telemetry.Observer
}

// Option configures a Toolset.
type Option func(*Toolset)

// WithLogger sets the logger receiving call and error records.
func WithLogger(log *slog.Logger) Option {
	return func(t *Toolset) {
		t.log = log
	}
}

// WithObserver records every call into OpenTelemetry.
func WithObserver(o *telemetry.Observer) Option {
	return func(t *Toolset) {
		t.observer = o
	}
}

// New creates a Toolset sending its requests through c.
func New(c *client.Client, opts ...Option) *Toolset {
	t := &Toolset{
		client: c,
		log:    slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Tools returns a ToolBox containing every Spoolman tool.
func (t *Toolset) Tools() *toolbox.ToolBox {
	tb := toolbox.New()
	tb.Register(t.systemTools()...)
	tb.Register(t.vendorTools()...)
	tb.Register(t.filamentTools()...)
	tb.Register(t.spoolTools()...)

	return tb
}

// operation defines a tool whose arguments decode into P and map onto the
// request returned by build.
func operation[P any](t *Toolset, name, description string, build func(P) (client.Request, error)) toolbox.Tool {
	var zero P
	s := schema.MustReflect(zero)

	return toolbox.Tool{
		Name:        name,
		Description: description,
		InputSchema: s.JSON(),
		Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
			return t.execute(ctx, name, input, func() (client.Request, error) {
				params, err := schema.Decode[P](s, input)
				if err != nil {
					return client.Request{}, err
				}

				return build(params)
			})
		},
	}
}

// execute runs one tool call: it logs the call, prepares the request, sends
// it and logs any failure.
func (t *Toolset) execute(ctx context.Context, name string, input json.RawMessage, prepare func() (client.Request, error)) (result string, err error) {
	ctx, done := t.observer.Start(ctx, name)
	defer func() {
		if err != nil {
			t.log.ErrorContext(ctx, "tool failed", "tool", name, "error", err)
		}
		done(err)
	}()

	t.log.InfoContext(ctx, "tool called", "tool", name, "params", loggable(input))

	req, err := prepare()
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	data, err := t.client.Do(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	return string(data), nil
}

// loggable keeps valid JSON arguments structured in the log record.
func loggable(input json.RawMessage) any {
	if len(input) == 0 {
		return nil
	}
	if json.Valid(input) {
		return input
	}

	return string(input)
}

func get(path string) client.Request {
	return client.Request{Method: http.MethodGet, Path: path}
}

func search(path string, params any) (client.Request, error) {
	q, err := schema.Query(params)
	if err != nil {
		return client.Request{}, err
	}

	return client.Request{Method: http.MethodGet, Path: path, Query: q}, nil
}
