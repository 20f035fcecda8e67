// internal/pkg/i18n/i18n.go
package i18n

import "strings"

// Supported languages
const (
	LanguageEnglish = "en"
	LanguageArabic  = "ar"
)

// Text directions
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// Translator resolves message keys for the bilingual admin UI. Data logic
// never depends on the language; it only selects strings and layout
// direction.
type Translator struct {
	defaultLanguage string
}

// NewTranslator creates a translator with the given default language
func NewTranslator(defaultLanguage string) *Translator {
	if !IsSupported(defaultLanguage) {
		defaultLanguage = LanguageEnglish
	}
	return &Translator{defaultLanguage: defaultLanguage}
}

// IsSupported reports whether lang is a supported language code
func IsSupported(lang string) bool {
	return lang == LanguageEnglish || lang == LanguageArabic
}

// Normalize maps an Accept-Language style value to a supported language
// code, falling back to English
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_;,"); i > 0 {
		lang = lang[:i]
	}
	if IsSupported(lang) {
		return lang
	}
	return LanguageEnglish
}

// Direction returns the text direction for a language
func Direction(lang string) string {
	if Normalize(lang) == LanguageArabic {
		return DirectionRTL
	}
	return DirectionLTR
}

// DefaultLanguage returns the configured default language
func (t *Translator) DefaultLanguage() string {
	return t.defaultLanguage
}

// T resolves a message key in the given language, falling back to the
// English message and finally to the key itself
func (t *Translator) T(lang, key string) string {
	lang = Normalize(lang)
	if msg, ok := messages[lang][key]; ok {
		return msg
	}
	if msg, ok := messages[LanguageEnglish][key]; ok {
		return msg
	}
	return key
}
