package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pastebin-backend/internal/files"
	"pastebin-backend/internal/pastes"
	"pastebin-backend/internal/shared/config"
	"pastebin-backend/internal/shared/server/middleware"
	"pastebin-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router needs.
type RouterDeps struct {
	Config       config.Config
	PasteHandler *pastes.Handler
	FileHandler  *files.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.PasteHandler.RegisterRoutes(api)
	deps.FileHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
