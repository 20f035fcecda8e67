// internal/interfaces/http/middleware/locale.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/jinstore/admin-backend/internal/pkg/i18n"
)

// LanguageKey is the context key the resolved language is stored under
const LanguageKey = "language"

// Locale resolves the request language from the lang query parameter or
// the Accept-Language header and advertises the matching text direction.
// The direction header lets the UI switch between LTR and RTL layouts.
func Locale(defaultLanguage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if lang == "" {
			lang = c.GetHeader("Accept-Language")
		}
		if lang == "" {
			lang = defaultLanguage
		}
		lang = i18n.Normalize(lang)

		c.Set(LanguageKey, lang)
		c.Header("Content-Language", lang)
		c.Header("X-Text-Direction", i18n.Direction(lang))

		c.Next()
	}
}

// GetLanguage returns the language resolved by Locale
func GetLanguage(c *gin.Context) string {
	if lang, ok := c.Get(LanguageKey); ok {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return i18n.LanguageEnglish
}
