package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WebhookAuth checks the shared webhook secret on inbound updates.
type WebhookAuth struct {
	secret string
}

func NewWebhookAuth(secret string) *WebhookAuth {
	return &WebhookAuth{secret: secret}
}

// Require rejects requests whose X-Webhook-Token header does not match the
// configured secret.
func (m *WebhookAuth) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Webhook-Token")
		if subtle.ConstantTimeCompare([]byte(token), []byte(m.secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized",
			})
			return
		}
		c.Next()
	}
}
