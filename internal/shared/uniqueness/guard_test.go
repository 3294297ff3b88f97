package uniqueness_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-store-service/internal/shared/apperror"
	"book-store-service/internal/shared/uniqueness"
)

type record struct{ email string }

func lookupIn(records ...record) func(ctx context.Context, value string) (*record, error) {
	return func(_ context.Context, value string) (*record, error) {
		for i := range records {
			if records[i].email == value {
				return &records[i], nil
			}
		}
		return nil, nil
	}
}

func TestGuard_Ensure(t *testing.T) {
	ctx := context.Background()
	guard := uniqueness.NewGuard("Author", "email", uniqueness.FromLookup(lookupIn(record{email: "taken@x.com"})))

	t.Run("free value passes", func(t *testing.T) {
		assert.NoError(t, guard.Ensure(ctx, "free@x.com"))
	})

	t.Run("taken value fails", func(t *testing.T) {
		err := guard.Ensure(ctx, "taken@x.com")
		require.Error(t, err)

		var dup *apperror.AlreadyExistsError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "Author", dup.Entity)
		assert.Equal(t, "email", dup.Attribute)
		assert.Equal(t, "taken@x.com", dup.Value)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		boom := errors.New("connection reset")
		g := uniqueness.NewGuard("AppUser", "username", func(context.Context, string) (bool, error) {
			return false, boom
		})

		err := g.Ensure(ctx, "admin")
		assert.ErrorIs(t, err, boom)
		assert.False(t, apperror.IsAlreadyExists(err))
	})
}
