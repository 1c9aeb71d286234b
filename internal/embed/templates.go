package embed

// Template is a named style preset for rich cards.
type Template struct {
	Key    string
	Label  string // display name shown by hosts; never sent to Discord
	Color  int    // 24-bit RGB as a decimal integer
	Footer *Footer
}

const DefaultTemplate = "basic"

// templateOrder is the canonical listing order.
var templateOrder = []string{"basic", "success", "error", "info"}

// templates is populated once at init and never written afterwards.
var templates = map[string]Template{
	"basic":   {Key: "basic", Label: "🟦 Basic Embed", Color: 3447003},
	"success": {Key: "success", Label: "🟩 Success Notification", Color: 5763719, Footer: &Footer{Text: "Success"}},
	"error":   {Key: "error", Label: "🟥 Error Notification", Color: 15548997, Footer: &Footer{Text: "Error"}},
	"info":    {Key: "info", Label: "⬜️ Information Update", Color: 3426654, Footer: &Footer{Text: "Info"}},
}

// Lookup returns the template registered under key, or the basic template
// when key is unknown.
func Lookup(key string) Template {
	t, ok := templates[key]
	if !ok {
		t = templates[DefaultTemplate]
	}
	return t.clone()
}

// IsTemplate reports whether key names a registered template.
func IsTemplate(key string) bool {
	_, ok := templates[key]
	return ok
}

// TemplateKeys returns the registered keys in canonical order.
func TemplateKeys() []string {
	keys := make([]string, len(templateOrder))
	copy(keys, templateOrder)
	return keys
}

// Templates returns copies of all registered templates in canonical order.
func Templates() []Template {
	out := make([]Template, 0, len(templateOrder))
	for _, key := range templateOrder {
		out = append(out, templates[key].clone())
	}
	return out
}

// clone keeps callers from reaching the shared Footer.
func (t Template) clone() Template {
	if t.Footer != nil {
		f := *t.Footer
		t.Footer = &f
	}
	return t
}
