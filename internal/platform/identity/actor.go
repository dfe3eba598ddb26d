// Package identity resolves the professional acting on a request. Bookings
// are stamped with the actor so the schedule shows who took them.
package identity

import (
	"context"
	"strings"
	"unicode"
)

// DefaultActorName is used when a request carries no usable identity.
const DefaultActorName = "Professional"

// Actor is the authenticated professional behind a request.
type Actor struct {
	Name     string
	Initials string
}

type contextKey struct{}

// NewActor builds an actor from a display name, deriving initials from the
// first two words. Blank names fall back to the default actor.
func NewActor(name string) Actor {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultActorName
	}
	return Actor{Name: name, Initials: initials(name)}
}

// WithActor stores the actor on the context.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, contextKey{}, actor)
}

// FromContext returns the actor on the context, or the default actor.
func FromContext(ctx context.Context) Actor {
	if actor, ok := ctx.Value(contextKey{}).(Actor); ok {
		return actor
	}
	return NewActor(DefaultActorName)
}

func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		out = append(out, unicode.ToUpper(runes[0]))
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
