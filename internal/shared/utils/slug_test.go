package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"punctuation and case", "Hello, World! 2024", "hello-world-2024"},
		{"leading and trailing whitespace", "  My Post  ", "my-post"},
		{"underscores collapse", "some_file_name", "some-file-name"},
		{"mixed separator runs", "a  -  b___c", "a-b-c"},
		{"already clean", "future-of-ai", "future-of-ai"},
		{"trailing punctuation", "What's Next?", "whats-next"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestUniqueSlug(t *testing.T) {
	ctx := context.Background()

	t.Run("base slug free", func(t *testing.T) {
		slug, err := UniqueSlug(ctx, "my-post", existsIn())
		require.NoError(t, err)
		assert.Equal(t, "my-post", slug)
	})

	t.Run("first free suffix wins", func(t *testing.T) {
		slug, err := UniqueSlug(ctx, "my-post", existsIn("my-post", "my-post-1"))
		require.NoError(t, err)
		assert.Equal(t, "my-post-2", slug)
	})

	t.Run("gap in suffixes is reused", func(t *testing.T) {
		slug, err := UniqueSlug(ctx, "my-post", existsIn("my-post", "my-post-2"))
		require.NoError(t, err)
		assert.Equal(t, "my-post-1", slug)
	})

	t.Run("probe error propagates", func(t *testing.T) {
		_, err := UniqueSlug(ctx, "my-post", func(context.Context, string) (bool, error) {
			return false, assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func existsIn(taken ...string) func(context.Context, string) (bool, error) {
	set := make(map[string]bool, len(taken))
	for _, s := range taken {
		set[s] = true
	}
	return func(_ context.Context, slug string) (bool, error) {
		return set[slug], nil
	}
}
