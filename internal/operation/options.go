package operation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/sjson"

	"github.com/kashyap-thakar/directus-extension-discord-operation/internal/dispatch"
	"github.com/kashyap-thakar/directus-extension-discord-operation/internal/embed"
)

// Options is the resolved options object a host passes to the operation.
// Required-ness is the host's concern; nothing here is re-validated.
type Options struct {
	ChannelID        string `json:"channelId"`
	MessageType      string `json:"messageType"`
	Message          string `json:"message"`
	EmbedTemplate    string `json:"embedTemplate"`
	EmbedTitle       string `json:"embedTitle"`
	EmbedDescription string `json:"embedDescription"`
	EmbedAuthorName  string `json:"embedAuthorName"`
	EmbedAuthorIcon  string `json:"embedAuthorIcon"`
	EmbedAuthorURL   string `json:"embedAuthorUrl"`
	EmbedThumbnail   string `json:"embedThumbnail"`
	EmbedImage       string `json:"embedImage"`
	EmbedFooterText  string `json:"embedFooterText"`
	EmbedFooterIcon  string `json:"embedFooterIcon"`
	EmbedTimestamp   bool   `json:"embedTimestamp"`
	EmbedFields      string `json:"embedFields"`
	Token            string `json:"token"`
}

// optionKinds lists every accepted option key; true marks booleans.
var optionKinds = map[string]bool{
	"channelId":        false,
	"messageType":      false,
	"message":          false,
	"embedTemplate":    false,
	"embedTitle":       false,
	"embedDescription": false,
	"embedAuthorName":  false,
	"embedAuthorIcon":  false,
	"embedAuthorUrl":   false,
	"embedThumbnail":   false,
	"embedImage":       false,
	"embedFooterText":  false,
	"embedFooterIcon":  false,
	"embedTimestamp":   true,
	"embedFields":      false,
	"token":            false,
}

// Override replaces a single option in an options document.
type Override struct {
	Key   string
	Value string
}

// ParseOverride parses "key=value". The value may be empty or contain '='.
func ParseOverride(s string) (Override, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return Override{}, fmt.Errorf("invalid override %q: expected key=value", s)
	}
	return Override{Key: key, Value: value}, nil
}

// DecodeOptions decodes an options document after applying overrides to it.
// An empty document is treated as {}.
func DecodeOptions(doc []byte, overrides ...Override) (Options, error) {
	if len(strings.TrimSpace(string(doc))) == 0 {
		doc = []byte("{}")
	}
	for _, o := range overrides {
		isBool, ok := optionKinds[o.Key]
		if !ok {
			return Options{}, fmt.Errorf("unknown option %q", o.Key)
		}
		var value any = o.Value
		if isBool {
			b, err := strconv.ParseBool(o.Value)
			if err != nil {
				return Options{}, fmt.Errorf("option %s: %w", o.Key, err)
			}
			value = b
		}
		var err error
		doc, err = sjson.SetBytes(doc, o.Key, value)
		if err != nil {
			return Options{}, fmt.Errorf("failed to set option %s: %w", o.Key, err)
		}
	}

	var opts Options
	if err := json.Unmarshal(doc, &opts); err != nil {
		return Options{}, fmt.Errorf("failed to parse options: %w", err)
	}
	return opts, nil
}

// Intent maps the options to a message intent. Any message type other than
// "simple" is treated as an embed.
func (o Options) Intent() embed.Intent {
	if o.MessageType == embed.KindSimple {
		return embed.SimpleMessage{Content: o.Message}
	}
	return embed.RichCard{
		Template:      o.EmbedTemplate,
		Title:         o.EmbedTitle,
		Description:   o.EmbedDescription,
		AuthorName:    o.EmbedAuthorName,
		AuthorIconURL: o.EmbedAuthorIcon,
		AuthorURL:     o.EmbedAuthorURL,
		ThumbnailURL:  o.EmbedThumbnail,
		ImageURL:      o.EmbedImage,
		FooterText:    o.EmbedFooterText,
		FooterIconURL: o.EmbedFooterIcon,
		Timestamp:     o.EmbedTimestamp,
		Fields:        o.EmbedFields,
	}
}

func (o Options) Target() dispatch.Target {
	return dispatch.Target{ChannelID: o.ChannelID, Token: o.Token}
}

// OverviewItem is one labelled line of an operation summary.
type OverviewItem struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Overview summarizes the options the way a flow editor shows a configured
// operation. The token is never part of it.
func Overview(o Options) []OverviewItem {
	content := "Embed Message"
	if o.MessageType == embed.KindSimple {
		content = o.Message
	}
	return []OverviewItem{
		{Label: "Channel ID/Thread ID", Text: o.ChannelID},
		{Label: "Type", Text: o.MessageType},
		{Label: "Content", Text: content},
	}
}
