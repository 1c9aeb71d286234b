package embed

import "encoding/json"

const (
	KindSimple = "simple"
	KindEmbed  = "embed"
)

// Intent is what the caller wants delivered: a SimpleMessage or a RichCard.
type Intent interface {
	Kind() string
}

// SimpleMessage is a plain text message.
type SimpleMessage struct {
	Content string
}

func (SimpleMessage) Kind() string { return KindSimple }

// RichCard describes a single embed. Empty string fields and a false
// Timestamp mean "not supplied".
type RichCard struct {
	Template      string
	Title         string
	Description   string
	AuthorName    string
	AuthorIconURL string
	AuthorURL     string
	ThumbnailURL  string
	ImageURL      string
	FooterText    string
	FooterIconURL string
	Timestamp     bool
	Fields        string // raw JSON array of {name, value, inline}
}

func (RichCard) Kind() string { return KindEmbed }

// Payload is the JSON body for the create-message endpoint.
type Payload struct {
	Content *string  `json:"content,omitempty"`
	Embeds  []*Embed `json:"embeds,omitempty"`
}

// Kind reports which intent produced the payload.
func (p Payload) Kind() string {
	if p.Embeds != nil {
		return KindEmbed
	}
	return KindSimple
}

// Embed is the rich card as Discord expects it.
type Embed struct {
	Color       int             `json:"color"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Author      *Author         `json:"author,omitempty"`
	Thumbnail   *Media          `json:"thumbnail,omitempty"`
	Image       *Media          `json:"image,omitempty"`
	Footer      *Footer         `json:"footer,omitempty"`
	Timestamp   string          `json:"timestamp,omitempty"`
	Fields      json.RawMessage `json:"fields,omitempty"`
}

type Author struct {
	Name    string `json:"name"`
	IconURL string `json:"icon_url,omitempty"`
	URL     string `json:"url,omitempty"`
}

type Footer struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

type Media struct {
	URL string `json:"url"`
}
