package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/i18n"
)

const localeKey = "locale"

// Locale negotiates the request language. The ?lang query parameter wins
// over Accept-Language; whatever arrives is normalized to en/ar before
// it reaches any service.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if lang == "" {
			lang = primaryLanguage(c.GetHeader("Accept-Language"))
		}
		c.Set(localeKey, i18n.Normalize(lang))
		c.Next()
	}
}

// GetLocale returns the negotiated locale for the request, defaulting
// to English when the middleware did not run.
func GetLocale(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(localeKey); ok {
		if loc, ok := v.(i18n.Locale); ok {
			return loc
		}
	}
	return i18n.English
}

// primaryLanguage extracts the base tag of the first Accept-Language
// entry: "ar-SA,ar;q=0.9" -> "ar".
func primaryLanguage(header string) string {
	if header == "" {
		return ""
	}
	first := header
	if idx := strings.IndexByte(first, ','); idx >= 0 {
		first = first[:idx]
	}
	if idx := strings.IndexByte(first, ';'); idx >= 0 {
		first = first[:idx]
	}
	if idx := strings.IndexByte(first, '-'); idx >= 0 {
		first = first[:idx]
	}
	return strings.TrimSpace(strings.ToLower(first))
}
