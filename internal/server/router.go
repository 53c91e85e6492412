package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cpTheAideveloper/geminimultilingual/web"
)

func newRouter(h *Handler, log *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(requestID())
	r.Use(requestLogger(log))
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.POST("/translate", h.Translate)
		api.GET("/languages", h.Languages)
	}

	// Everything that is not an API route is the embedded frontend.
	assets, err := web.Assets()
	if err != nil {
		log.Warn("embedded frontend unavailable", "error", err)
		r.NoRoute(func(c *gin.Context) {
			c.String(http.StatusNotFound, "frontend assets not embedded in this build")
		})
		return r
	}
	r.NoRoute(gin.WrapH(http.FileServer(http.FS(assets))))

	return r
}
