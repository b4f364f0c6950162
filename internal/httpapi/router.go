package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the demo page, the JSON API and the streaming endpoint
// onto a gin engine. Assets are embedded, so the binary is self-contained.
func SetupRouter(h *Handler) *gin.Engine {
	if h.cfg.DebugMode {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(corsMiddleware())
	r.MaxMultipartMemory = h.cfg.MaxUploadMB << 20
	r.SetHTMLTemplate(pageTemplates())
	r.StaticFS("/static", http.FS(staticRoot()))

	r.GET("/", h.Index)
	r.GET("/healthz", h.Health)

	api := r.Group("/api")
	{
		api.POST("/analyze", h.AnalyzeText)
		api.POST("/analyze/file", h.AnalyzeFile)
		api.GET("/modes", h.Modes)
		api.GET("/sample", h.Sample)
	}

	r.GET("/ws/analyze", h.AnalyzeStream)

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
