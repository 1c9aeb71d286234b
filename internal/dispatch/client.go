package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/kashyap-thakar/directus-extension-discord-operation/internal/embed"
)

const (
	DefaultAPIBase   = "https://discord.com/api/v10"
	DefaultUserAgent = "DiscordBot (https://github.com/kashyap-thakar/directus-extension-discord-operation, 1.0)"

	maxResponseSize = 1 << 20 // 1MB
)

// Target identifies where a message goes and which bot sends it.
type Target struct {
	ChannelID string
	Token     string
}

// LogValue keeps the token out of logs.
func (t Target) LogValue() slog.Value {
	return slog.GroupValue(slog.String("channelID", t.ChannelID))
}

// Result describes a message Discord accepted.
type Result struct {
	Status    string `json:"status"`
	MessageID string `json:"messageId"`
	ChannelID string `json:"channelId"`
	Type      string `json:"type"`
}

// Client posts payloads to Discord's create-message endpoint. It is safe for
// concurrent use and never retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL points the client at a different API root.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    DefaultAPIBase,
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send posts payload to target's channel. Every failure is returned as *Error.
func (c *Client) Send(ctx context.Context, target Target, payload embed.Payload) (*Result, error) {
	res, err := c.send(ctx, target, payload)
	if err != nil {
		return nil, &Error{Err: err}
	}
	return res, nil
}

func (c *Client) send(ctx context.Context, target Target, payload embed.Payload) (*Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.messagesURL(target.ChannelID), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bot "+target.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr discordgo.APIErrorMessage
		if err := json.Unmarshal(respBody, &apiErr); err != nil {
			return nil, err
		}
		slog.Debug("discord: message rejected", "target", target, "status", resp.StatusCode, "code", apiErr.Code)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Code:       apiErr.Code,
			Message:    apiErr.Message,
		}
	}

	var msg discordgo.Message
	if err := json.Unmarshal(respBody, &msg); err != nil {
		return nil, err
	}
	slog.Debug("discord: message sent", "target", target, "messageID", msg.ID)

	return &Result{
		Status:    "success",
		MessageID: msg.ID,
		ChannelID: msg.ChannelID,
		Type:      payload.Kind(),
	}, nil
}

func (c *Client) messagesURL(channelID string) string {
	return c.baseURL + "/channels/" + url.PathEscape(channelID) + "/messages"
}
