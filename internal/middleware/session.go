package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/t1tu5x/project-golan/internal/session"
)

const (
	CookieName = "menu_session"
	sessionKey = "session"
)

// SessionMiddleware resolves the visitor's session from the signed cookie, starting
// a new one when the cookie is missing, invalid or points to an expired session.
func SessionMiddleware(store *session.Store, tokens *session.Tokens, logger *zap.Logger, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := resolve(c, store, tokens)
		if err != nil {
			sess = store.Create()

			token, err := tokens.Issue(sess.ID)
			if err != nil {
				logger.Error("issue session token", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session unavailable"})
				return
			}

			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, token, int(tokens.TTL().Seconds()), "/", "", secure, true)
			logger.Debug("session started", zap.String("session", sess.ID))
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

func resolve(c *gin.Context, store *session.Store, tokens *session.Tokens) (*session.Session, error) {
	raw, err := c.Cookie(CookieName)
	if err != nil {
		return nil, err
	}
	sid, err := tokens.Parse(raw)
	if err != nil {
		return nil, err
	}
	return store.Get(sid)
}

// CurrentSession returns the session attached by SessionMiddleware.
func CurrentSession(c *gin.Context) (*session.Session, error) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, errors.New("no session in request context")
	}
	sess, ok := v.(*session.Session)
	if !ok {
		return nil, errors.New("invalid session context")
	}
	return sess, nil
}
