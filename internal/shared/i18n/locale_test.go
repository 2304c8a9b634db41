package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Locale
	}{
		{"arabic", "ar", Arabic},
		{"english", "en", English},
		{"empty defaults to english", "", English},
		{"uppercase is not arabic", "AR", English},
		{"region tag is not arabic", "ar-SA", English},
		{"unknown language", "fr", English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestResolve(t *testing.T) {
	ar := "مرحبا"
	empty := ""

	tests := []struct {
		name    string
		loc     Locale
		base    string
		variant *string
		want    string
	}{
		{"arabic variant wins for arabic locale", Arabic, "Hello", &ar, "مرحبا"},
		{"base wins for english locale", English, "Hello", &ar, "Hello"},
		{"nil variant falls back", Arabic, "Hello", nil, "Hello"},
		{"empty variant falls back", Arabic, "Hello", &empty, "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.loc, tt.base, tt.variant))
		})
	}
}

func TestResolveList(t *testing.T) {
	base := []string{"A", "B"}

	t.Run("whole list replacement, not per-element merge", func(t *testing.T) {
		got := ResolveList(Arabic, base, []string{"ألف"})
		assert.Equal(t, []string{"ألف"}, got)
		assert.Len(t, got, 1)
	})

	t.Run("empty arabic list falls back to base", func(t *testing.T) {
		assert.Equal(t, base, ResolveList(Arabic, base, []string{}))
		assert.Equal(t, base, ResolveList(Arabic, base, nil))
	})

	t.Run("english locale ignores variant", func(t *testing.T) {
		assert.Equal(t, base, ResolveList(English, base, []string{"ألف"}))
	})
}
