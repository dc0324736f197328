package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/t1tu5x/project-golan/internal/menu"
	"github.com/t1tu5x/project-golan/internal/middleware"
	"github.com/t1tu5x/project-golan/internal/session"
)

type Deps struct {
	Handler       *menu.Handler
	Store         *session.Store
	Tokens        *session.Tokens
	Logger        *zap.Logger
	CORSOrigins   []string
	SecureCookies bool
}

func NewRouter(d Deps) (*gin.Engine, error) {
	tmpl, err := menu.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery(), middleware.RequestLogger(d.Logger))

	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	withSession := middleware.SessionMiddleware(d.Store, d.Tokens, d.Logger, d.SecureCookies)

	pages := r.Group("/")
	pages.Use(withSession)
	{
		pages.GET("", d.Handler.Page)
		pages.POST("select", d.Handler.Select)
		pages.POST("summary", d.Handler.Summary)
	}

	api := r.Group("/api")
	api.Use(withSession)
	{
		api.GET("/form", d.Handler.FormJSON)
		api.POST("/summary", d.Handler.SummaryJSON)
	}

	return r, nil
}
