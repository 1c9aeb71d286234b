package operation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kashyap-thakar/directus-extension-discord-operation/internal/dispatch"
	"github.com/kashyap-thakar/directus-extension-discord-operation/internal/embed"
)

func init() {
	Register("discord", newDiscordOperation)
}

type discordConfig struct {
	APIBase   string `json:"apiBase"`
	UserAgent string `json:"userAgent"`
}

// DiscordOperation sends simple or embed messages to a Discord channel or thread.
type DiscordOperation struct {
	client  *dispatch.Client
	builder embed.Builder
}

func newDiscordOperation(cfg json.RawMessage) (Operation, error) {
	var dcfg discordConfig
	if len(cfg) > 0 {
		if err := json.Unmarshal(cfg, &dcfg); err != nil {
			return nil, fmt.Errorf("failed to parse discord config: %w", err)
		}
	}
	client := dispatch.NewClient(
		dispatch.WithBaseURL(dcfg.APIBase),
		dispatch.WithUserAgent(dcfg.UserAgent),
	)
	return NewDiscordOperation(client), nil
}

// NewDiscordOperation wraps an existing dispatch client.
func NewDiscordOperation(client *dispatch.Client) *DiscordOperation {
	return &DiscordOperation{client: client}
}

func (o *DiscordOperation) ID() string { return "discord" }

// Build returns the payload Handle would send, without sending it.
func (o *DiscordOperation) Build(opts Options) embed.Payload {
	return o.builder.Build(opts.Intent())
}

func (o *DiscordOperation) Handle(ctx context.Context, opts Options) (*dispatch.Result, error) {
	return o.client.Send(ctx, opts.Target(), o.Build(opts))
}
