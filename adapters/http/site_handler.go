package http

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/3zk9/portfolio/pkg/apperror"
)

// SiteHandler serves a built site that is published under base.
type SiteHandler struct {
	root http.FileSystem
	base string
}

func NewSiteHandler(root http.FileSystem, base string) *SiteHandler {
	return &SiteHandler{root: root, base: base}
}

func (h *SiteHandler) Serve(c *gin.Context) {
	rel, ok := strings.CutPrefix(c.Request.URL.Path, h.base)
	if !ok {
		c.Error(apperror.NewNotFound("page", c.Request.URL.Path))
		return
	}
	name := path.Clean("/" + rel)
	if strings.HasSuffix(rel, "/") || rel == "" {
		name = path.Join(name, "index.html")
	}

	f, err := h.root.Open(name)
	if err != nil {
		c.Error(apperror.NewNotFound("file", name))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		c.Error(apperror.NewInternal("failed to stat "+name, err))
		return
	}
	if info.IsDir() {
		c.Redirect(http.StatusMovedPermanently, c.Request.URL.Path+"/")
		return
	}

	c.Header("Cache-Control", "no-cache")
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}
