package operation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kashyap-thakar/directus-extension-discord-operation/internal/dispatch"
	"github.com/kashyap-thakar/directus-extension-discord-operation/internal/embed"
)

type mockOperation struct{ id string }

func (m *mockOperation) ID() string { return m.id }
func (m *mockOperation) Handle(_ context.Context, opts Options) (*dispatch.Result, error) {
	return &dispatch.Result{Status: "success", ChannelID: opts.ChannelID}, nil
}

func TestRegisterAndGetFactory(t *testing.T) {
	const id = "test-op-reg"
	Register(id, func(cfg json.RawMessage) (Operation, error) {
		return &mockOperation{id: id}, nil
	})

	factory, ok := GetFactory(id)
	if !ok {
		t.Fatalf("expected factory for %q to be registered", id)
	}
	op, err := factory(nil)
	if err != nil {
		t.Fatalf("factory error: %v", err)
	}
	if op.ID() != id {
		t.Errorf("ID() = %q, want %q", op.ID(), id)
	}
}

func TestGetFactoryNotFound(t *testing.T) {
	if _, ok := GetFactory("nonexistent-op-xyz"); ok {
		t.Fatal("expected GetFactory to return false for unregistered operation")
	}
}

func TestRegisteredIDsIncludesDiscord(t *testing.T) {
	ids := RegisteredIDs()
	found := false
	for _, id := range ids {
		if id == "discord" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected discord in %v", ids)
	}
}

func TestDiscordFactoryBadConfig(t *testing.T) {
	factory, _ := GetFactory("discord")
	if _, err := factory(json.RawMessage(`{not json`)); err == nil {
		t.Fatal("expected error for invalid config")
	}
}

func TestDecodeOptions(t *testing.T) {
	doc := []byte(`{"channelId":"c1","messageType":"embed","embedTitle":"T","embedTimestamp":false,"extra":1}`)
	opts, err := DecodeOptions(doc,
		Override{Key: "embedTitle", Value: "Overridden"},
		Override{Key: "embedTimestamp", Value: "true"},
		Override{Key: "embedFields", Value: `[{"name":"a","value":"b"}]`},
	)
	if err != nil {
		t.Fatalf("DecodeOptions: %v", err)
	}
	want := Options{
		ChannelID:      "c1",
		MessageType:    "embed",
		EmbedTitle:     "Overridden",
		EmbedTimestamp: true,
		EmbedFields:    `[{"name":"a","value":"b"}]`,
	}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeOptionsEmptyDocument(t *testing.T) {
	opts, err := DecodeOptions(nil, Override{Key: "message", Value: "hi"}, Override{Key: "messageType", Value: "simple"})
	if err != nil {
		t.Fatalf("DecodeOptions: %v", err)
	}
	if opts.Message != "hi" || opts.MessageType != "simple" {
		t.Errorf("unexpected options: %+v", opts)
	}
}

func TestDecodeOptionsErrors(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		overrides []Override
	}{
		{"unknown key", `{}`, []Override{{Key: "embedColor", Value: "1"}}},
		{"bad bool", `{}`, []Override{{Key: "embedTimestamp", Value: "maybe"}}},
		{"bad document", `{"channelId":`, nil},
		{"wrong type", `{"embedTimestamp":"yes"}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeOptions([]byte(tt.doc), tt.overrides...); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseOverride(t *testing.T) {
	o, err := ParseOverride("embedFields=[{\"name\":\"a=b\"}]")
	if err != nil {
		t.Fatalf("ParseOverride: %v", err)
	}
	if o.Key != "embedFields" || o.Value != `[{"name":"a=b"}]` {
		t.Errorf("unexpected override: %+v", o)
	}

	o, err = ParseOverride("message=")
	if err != nil || o.Value != "" {
		t.Errorf("expected empty value, got %+v, %v", o, err)
	}

	for _, bad := range []string{"novalue", "=x", ""} {
		if _, err := ParseOverride(bad); err == nil {
			t.Errorf("ParseOverride(%q): expected error", bad)
		}
	}
}

func TestOptionsIntent(t *testing.T) {
	simple := Options{MessageType: "simple", Message: "hello", EmbedTitle: "ignored"}
	if diff := cmp.Diff(embed.Intent(embed.SimpleMessage{Content: "hello"}), simple.Intent()); diff != "" {
		t.Errorf("simple intent mismatch (-want +got):\n%s", diff)
	}

	for _, mt := range []string{"embed", "", "other"} {
		opts := Options{
			MessageType:      mt,
			EmbedTemplate:    "info",
			EmbedTitle:       "T",
			EmbedDescription: "D",
			EmbedAuthorName:  "A",
			EmbedAuthorIcon:  "ai",
			EmbedAuthorURL:   "au",
			EmbedThumbnail:   "th",
			EmbedImage:       "im",
			EmbedFooterText:  "ft",
			EmbedFooterIcon:  "fi",
			EmbedTimestamp:   true,
			EmbedFields:      "[]",
		}
		want := embed.RichCard{
			Template:      "info",
			Title:         "T",
			Description:   "D",
			AuthorName:    "A",
			AuthorIconURL: "ai",
			AuthorURL:     "au",
			ThumbnailURL:  "th",
			ImageURL:      "im",
			FooterText:    "ft",
			FooterIconURL: "fi",
			Timestamp:     true,
			Fields:        "[]",
		}
		if diff := cmp.Diff(embed.Intent(want), opts.Intent()); diff != "" {
			t.Errorf("messageType %q: intent mismatch (-want +got):\n%s", mt, diff)
		}
	}
}

func TestOverview(t *testing.T) {
	got := Overview(Options{ChannelID: "c1", MessageType: "simple", Message: "hi", Token: "secret"})
	want := []OverviewItem{
		{Label: "Channel ID/Thread ID", Text: "c1"},
		{Label: "Type", Text: "simple"},
		{Label: "Content", Text: "hi"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("overview mismatch (-want +got):\n%s", diff)
	}

	got = Overview(Options{ChannelID: "c1", MessageType: "embed", Message: "hi"})
	if got[2].Text != "Embed Message" {
		t.Errorf("Content = %q, want Embed Message", got[2].Text)
	}
}

func newDiscord(t *testing.T, status int, body string, check func(r *http.Request, body []byte)) Operation {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		if check != nil {
			check(r, b)
		}
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	factory, ok := GetFactory("discord")
	if !ok {
		t.Fatal("discord operation not registered")
	}
	cfg, _ := json.Marshal(map[string]string{"apiBase": srv.URL, "userAgent": "test/1"})
	op, err := factory(cfg)
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	return op
}

func TestDiscordHandleSimple(t *testing.T) {
	op := newDiscord(t, http.StatusOK, `{"id":"123","channel_id":"c1"}`, func(r *http.Request, body []byte) {
		if r.URL.Path != "/channels/c1/messages" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bot tok" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("User-Agent") != "test/1" {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		if string(body) != `{"content":"hello"}` {
			t.Errorf("body = %s", body)
		}
	})

	res, err := op.Handle(context.Background(), Options{ChannelID: "c1", MessageType: "simple", Message: "hello", Token: "tok"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	want := &dispatch.Result{Status: "success", MessageID: "123", ChannelID: "c1", Type: "simple"}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscordHandleEmbed(t *testing.T) {
	op := newDiscord(t, http.StatusOK, `{"id":"7","channel_id":"c2"}`, func(r *http.Request, body []byte) {
		want := `{"embeds":[{"color":15548997,"title":"Build failed","description":"see logs","footer":{"text":"ci"},"fields":[{"name":"job","value":"test"}]}]}`
		if string(body) != want {
			t.Errorf("body = %s, want %s", body, want)
		}
	})

	res, err := op.Handle(context.Background(), Options{
		ChannelID:        "c2",
		MessageType:      "embed",
		EmbedTemplate:    "error",
		EmbedTitle:       "Build failed",
		EmbedDescription: "see logs",
		EmbedFooterText:  "ci",
		EmbedFields:      `[{"name":"job","value":"test"}]`,
		Token:            "tok",
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if res.Type != "embed" || res.MessageID != "7" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestDiscordHandleProviderError(t *testing.T) {
	op := newDiscord(t, http.StatusForbidden, `{"message":"Missing Access","code":50001}`, nil)

	_, err := op.Handle(context.Background(), Options{ChannelID: "c1", MessageType: "simple", Message: "x", Token: "secret"})
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Provider API Error: Missing Access") || !strings.HasPrefix(msg, "Failed to send message: ") {
		t.Errorf("unexpected error message %q", msg)
	}
	if strings.Contains(msg, "secret") {
		t.Errorf("error leaks token: %q", msg)
	}
}

func TestDiscordBuildMatchesEmbedBuild(t *testing.T) {
	op := NewDiscordOperation(dispatch.NewClient())
	opts := Options{MessageType: "embed", EmbedTemplate: "success", EmbedTitle: "T", EmbedDescription: "D"}
	if diff := cmp.Diff(embed.Build(opts.Intent()), op.Build(opts)); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}
