package middleware

import (
	"fashion-hub/models"
	"fashion-hub/utils"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionIDKey = "session_id"

type SessionOptions struct {
	CookieName string
	Secret     string
	TTL        time.Duration
	Secure     bool
}

// SessionMiddleware binds every request to a browsing session. A missing or
// invalid cookie starts a new session. A valid cookie past half its lifetime
// is reissued for the same session. The cookie has no Max-Age, so the session
// ends with the browser session.
func SessionMiddleware(opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(opts.CookieName); err == nil {
			if claims, err := utils.ValidateSessionToken(raw, opts.Secret); err == nil {
				if claims.ExpiresAt != nil && time.Until(claims.ExpiresAt.Time) < opts.TTL/2 {
					if !issueSessionCookie(c, opts, claims.SessionID) {
						return
					}
				}
				c.Set(sessionIDKey, claims.SessionID)
				c.Next()
				return
			}
		}

		sessionID := uuid.NewString()
		if !issueSessionCookie(c, opts, sessionID) {
			return
		}
		c.Set(sessionIDKey, sessionID)
		c.Next()
	}
}

func issueSessionCookie(c *gin.Context, opts SessionOptions, sessionID string) bool {
	token, err := utils.GenerateSessionToken(sessionID, opts.Secret, opts.TTL)
	if err != nil {
		log.Printf("Failed to sign session token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to start session",
		})
		c.Abort()
		return false
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(opts.CookieName, token, 0, "/", "", opts.Secure, true)
	return true
}

// SessionID returns the session bound by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
