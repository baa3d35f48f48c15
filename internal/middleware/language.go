// Language negotiation from Accept-Language only (not query, body or cookies).
package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/connectvan/backend/internal/i18n"
)

const HeaderAcceptLanguage = "Accept-Language"

// LanguageMiddleware picks the first supported tag of Accept-Language; missing or
// unsupported headers get the site default (pt).
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := negotiate(c.GetHeader(HeaderAcceptLanguage))
		c.Set(string(ContextKeyLanguage), lang)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), ContextKeyLanguage, lang))
		c.Header("Content-Language", lang)
		c.Next()
	}
}

// negotiate walks "pt-BR,en;q=0.9" style values in order; q-weights are not re-sorted.
func negotiate(h string) string {
	for _, part := range strings.Split(h, ",") {
		tag := strings.TrimSpace(part)
		if i := strings.IndexAny(tag, ";-_"); i >= 0 {
			tag = tag[:i]
		}
		tag = strings.ToLower(tag)
		if i18n.IsSupported(tag) {
			return tag
		}
	}
	return i18n.Default
}
