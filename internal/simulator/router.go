package simulator

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the simulator's HTTP surface. Callers choose the gin mode.
func NewRouter(logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	authorizeHandler := NewAuthorizeHandler(logger)
	router.POST("/payments", authorizeHandler.Authorize)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
