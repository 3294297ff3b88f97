// Package uniqueness rejects a create when a unique attribute is already taken.
package uniqueness

import (
	"context"
	"fmt"

	"book-store-service/internal/shared/apperror"
)

// Finder reports whether a record with the given attribute value exists.
type Finder func(ctx context.Context, value string) (bool, error)

// FromLookup adapts a repository find-by-attribute method.
// Lookups return (nil, nil) when nothing matches.
func FromLookup[T any](find func(ctx context.Context, value string) (*T, error)) Finder {
	return func(ctx context.Context, value string) (bool, error) {
		found, err := find(ctx, value)
		if err != nil {
			return false, err
		}
		return found != nil, nil
	}
}

// Guard checks one attribute of one entity kind, e.g. Author.email.
type Guard struct {
	entity    string
	attribute string
	exists    Finder
}

func NewGuard(entity, attribute string, exists Finder) *Guard {
	return &Guard{entity: entity, attribute: attribute, exists: exists}
}

// Ensure fails with AlreadyExistsError when value is taken.
// Only the create paths call it; updates keep their own value.
func (g *Guard) Ensure(ctx context.Context, value string) error {
	taken, err := g.exists(ctx, value)
	if err != nil {
		return fmt.Errorf("failed to check %s uniqueness: %w", g.attribute, err)
	}
	if taken {
		return apperror.AlreadyExists(g.entity, g.attribute, value)
	}
	return nil
}
