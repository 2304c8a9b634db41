package utils

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
)

// Slugify derives a URL-safe identifier from a display title:
// lower-cased, punctuation stripped, runs of whitespace/underscore/hyphen
// collapsed to a single hyphen, leading/trailing hyphens trimmed.
//
//	"Hello, World! 2024" -> "hello-world-2024"
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// UniqueSlug probes the store for an unused slug starting from base and
// appending -1, -2, ... until a free value is found. The first free
// suffix wins. The probe is best-effort: a concurrent duplicate write is
// caught by the store's unique constraint, not here.
func UniqueSlug(ctx context.Context, base string, exists func(context.Context, string) (bool, error)) (string, error) {
	slug := base
	for i := 1; ; i++ {
		taken, err := exists(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("failed to check slug %q: %w", slug, err)
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
