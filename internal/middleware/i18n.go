// internal/middleware/i18n.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

var (
	supportedLanguages = []language.Tag{language.English, language.Spanish}
	languageMatcher    = language.NewMatcher(supportedLanguages)
)

// I18nMiddleware stores the best supported match for Accept-Language under
// "lang"; anything unsupported maps to English.
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", matchLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func matchLanguage(header string) string {
	if header == "" {
		return "en"
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "en"
	}
	_, index, confidence := languageMatcher.Match(tags...)
	if confidence == language.No {
		return "en"
	}
	base, _ := supportedLanguages[index].Base()
	return base.String()
}
