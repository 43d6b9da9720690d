package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/3zk9/portfolio/pkg/apperror"
	"github.com/3zk9/portfolio/pkg/logger"
)

// NewRouter serves root under base, the way the site is published.
func NewRouter(root http.FileSystem, base string, log logger.Logger) *gin.Engine {
	site := NewSiteHandler(root, base)

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), ErrorMiddleware(log))

	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

	if base == "/" {
		router.NoRoute(site.Serve)
		return router
	}

	router.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, base) })
	trimmed := strings.TrimSuffix(base, "/")
	router.GET(trimmed+"/*filepath", site.Serve)
	router.HEAD(trimmed+"/*filepath", site.Serve)
	router.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NewNotFound("page", c.Request.URL.Path))
	})
	return router
}
