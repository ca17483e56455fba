package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/eerste-dingen/internal/platform/ctxutil"
)

const (
	ClientCookie    = "ed_client"
	clientCookieTTL = 365 * 24 * time.Hour
)

// ClientIdentity resolves the anonymous browser client id from its cookie,
// issuing a new one when the cookie is missing or malformed. The id keys the
// persisted navigation state; there are no accounts.
func ClientIdentity(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var id uuid.UUID
		if raw, err := c.Cookie(ClientCookie); err == nil {
			if parsed, err := uuid.Parse(strings.TrimSpace(raw)); err == nil && parsed != uuid.Nil {
				id = parsed
			}
		}
		if id == uuid.Nil {
			id = uuid.New()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     ClientCookie,
				Value:    id.String(),
				Path:     "/",
				MaxAge:   int(clientCookieTTL / time.Second),
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Request = c.Request.WithContext(ctxutil.WithClientID(c.Request.Context(), id))
		c.Set("client_id", id.String())
		c.Next()
	}
}
