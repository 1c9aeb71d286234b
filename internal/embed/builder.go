package embed

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/tidwall/gjson"
)

// timestampLayout matches JavaScript's Date.toISOString, which Discord
// accepts for embed timestamps.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Builder turns intents into payloads. The zero value uses the wall clock.
type Builder struct {
	Now func() time.Time
}

var defaultBuilder Builder

// Build converts intent into a create-message payload using the wall clock.
func Build(intent Intent) Payload {
	return defaultBuilder.Build(intent)
}

// Build converts intent into a create-message payload. It never fails:
// an unknown template falls back to basic and unusable fields JSON is dropped.
func (b Builder) Build(intent Intent) Payload {
	switch in := intent.(type) {
	case SimpleMessage:
		content := in.Content
		return Payload{Content: &content}
	case *SimpleMessage:
		content := in.Content
		return Payload{Content: &content}
	case RichCard:
		return Payload{Embeds: []*Embed{b.card(in)}}
	case *RichCard:
		return Payload{Embeds: []*Embed{b.card(*in)}}
	default:
		// nil or foreign intents build an empty basic card.
		return Payload{Embeds: []*Embed{b.card(RichCard{})}}
	}
}

func (b Builder) card(rc RichCard) *Embed {
	tmpl := Lookup(rc.Template)

	e := &Embed{}
	// Template first, then the required content, so a template can never
	// shadow the caller's title or description.
	e.Color = tmpl.Color
	e.Footer = tmpl.Footer
	e.Title = rc.Title
	e.Description = rc.Description

	if rc.AuthorName != "" {
		e.Author = &Author{
			Name:    rc.AuthorName,
			IconURL: rc.AuthorIconURL,
			URL:     rc.AuthorURL,
		}
	}
	if rc.ThumbnailURL != "" {
		e.Thumbnail = &Media{URL: rc.ThumbnailURL}
	}
	if rc.ImageURL != "" {
		e.Image = &Media{URL: rc.ImageURL}
	}
	// The caller's footer replaces the template footer as a whole.
	if rc.FooterText != "" {
		e.Footer = &Footer{
			Text:    rc.FooterText,
			IconURL: rc.FooterIconURL,
		}
	}
	if rc.Timestamp {
		e.Timestamp = b.now().UTC().Format(timestampLayout)
	}
	if rc.Fields != "" {
		if fields, ok := parseFields(rc.Fields); ok {
			e.Fields = fields
		}
	}
	return e
}

func (b Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// parseFields accepts raw only when it is valid JSON with an array at the
// top level. Anything else is reported as not ok and logged.
func parseFields(raw string) (json.RawMessage, bool) {
	if !gjson.Valid(raw) {
		slog.Warn("discord: ignoring embed fields", "reason", "invalid JSON")
		return nil, false
	}
	if !gjson.Parse(raw).IsArray() {
		slog.Warn("discord: ignoring embed fields", "reason", "not an array")
		return nil, false
	}
	return json.RawMessage(raw), true
}
