package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/t1tu5x/project-golan/internal/catalog"
	"github.com/t1tu5x/project-golan/internal/session"
)

func setupSessionRouter(t *testing.T) (*gin.Engine, *session.Store, *session.Tokens) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewStore(func() *catalog.Cache {
		return catalog.NewCache(catalog.NewLoader(catalog.NewFileSource(t.TempDir()), nil))
	}, time.Hour)
	tokens, err := session.NewTokens("test-secret-key-for-testing-only", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.Use(SessionMiddleware(store, tokens, zap.NewNop(), false))
	router.GET("/test", func(c *gin.Context) {
		sess, err := CurrentSession(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": sess.ID})
	})
	return router, store, tokens
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

// TestSessionMiddleware_NewVisitor tests that a request without cookie starts a session
func TestSessionMiddleware_NewVisitor(t *testing.T) {
	router, store, _ := setupSessionRouter(t)

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 1, store.Len())
}

// TestSessionMiddleware_ReturningVisitor tests that a valid cookie keeps the session
func TestSessionMiddleware_ReturningVisitor(t *testing.T) {
	router, store, tokens := setupSessionRouter(t)
	sess := store.Create()
	token, err := tokens.Issue(sess.ID)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/test", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), sess.ID)
	assert.Nil(t, sessionCookie(w))
	assert.Equal(t, 1, store.Len())
}

// TestSessionMiddleware_InvalidCookie tests that a tampered cookie gets a fresh session
func TestSessionMiddleware_InvalidCookie(t *testing.T) {
	router, store, _ := setupSessionRouter(t)

	req := httptest.NewRequest("GET", "/test", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "invalid_token_xyz"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, sessionCookie(w))
	assert.Equal(t, 1, store.Len())
}

// TestSessionMiddleware_UnknownSession tests a validly signed cookie for a forgotten session
func TestSessionMiddleware_UnknownSession(t *testing.T) {
	router, _, tokens := setupSessionRouter(t)
	token, err := tokens.Issue("forgotten")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/test", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "forgotten")
	assert.NotNil(t, sessionCookie(w))
}

func TestCurrentSession_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := CurrentSession(c)
	assert.Error(t, err)
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	router := gin.New()
	router.Use(RequestLogger(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/ok", "/missing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "/missing", entries[1].ContextMap()["path"])
}
