package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/go-coinx/coinx/internal/domain"
	"github.com/go-coinx/coinx/internal/sessionrepo"
	"github.com/google/uuid"
)

// Keys under which the session slot is stored in the gin context.
const (
	SessionCookieName = "coinx_session"
	SessionIDKey      = "session_id"
	SessionKey        = "session"
)

// SessionLoader ensures every request carries a session identifier cookie and
// loads the matching session slot into the gin context. Handlers read the
// Session value, pass it through the core, and write the returned value back
// with SaveSession.
func SessionLoader(store *sessionrepo.RepoMem) gin.HandlerFunc {
	return func(c *gin.Context) {
		var id uuid.UUID

		cookie, err := c.Cookie(SessionCookieName)
		if err == nil {
			id, err = uuid.Parse(cookie)
		}

		if err != nil {
			id = uuid.New()
			c.SetCookie(SessionCookieName, id.String(), 0, "/", "", false, true)
		}

		sess, _ := store.Get(c.Request.Context(), id)

		c.Set(SessionIDKey, id)
		c.Set(SessionKey, sess)

		c.Next()
	}
}

// Session returns the session loaded for this request.
func Session(c *gin.Context) domain.Session {
	if sess, ok := c.Get(SessionKey); ok {
		return sess.(domain.Session)
	}

	return domain.Session{}
}

// SaveSession writes the session value back to its slot.
func SaveSession(c *gin.Context, store *sessionrepo.RepoMem, sess domain.Session) {
	id, ok := c.Get(SessionIDKey)
	if !ok {
		return
	}

	store.Put(c.Request.Context(), id.(uuid.UUID), sess)
	c.Set(SessionKey, sess)
}

// DeleteSession removes the slot entirely, returning the request to anonymous.
// Sign-out uses this instead of SaveSession so abandoned slots do not pile up
// in the store.
func DeleteSession(c *gin.Context, store *sessionrepo.RepoMem) {
	id, ok := c.Get(SessionIDKey)
	if !ok {
		return
	}

	store.Delete(c.Request.Context(), id.(uuid.UUID))
	c.Set(SessionKey, domain.Session{})
}
