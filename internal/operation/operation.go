package operation

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/kashyap-thakar/directus-extension-discord-operation/internal/dispatch"
)

// Operation is a host-invocable unit that turns resolved options into a
// delivered message.
type Operation interface {
	ID() string
	Handle(ctx context.Context, opts Options) (*dispatch.Result, error)
}

// Factory creates an Operation from its JSON config.
type Factory func(cfg json.RawMessage) (Operation, error)

var registry = map[string]Factory{}

// Register adds an operation factory to the registry.
func Register(id string, factory Factory) {
	registry[id] = factory
}

// GetFactory returns the factory for an operation id.
func GetFactory(id string) (Factory, bool) {
	f, ok := registry[id]
	return f, ok
}

// RegisteredIDs returns all registered operation ids, sorted.
func RegisteredIDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
