package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	scanH *ScanHandler,
	chatH *ChatHandler,
	profileH *ProfileHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware())

	r.POST("/analyze-food", scanH.AnalyzeFood)
	r.POST("/food-chat", chatH.FoodChat)

	r.PUT("/profile", profileH.SaveProfile)
	r.GET("/profile/:user_id", profileH.GetProfile)
	r.GET("/scans/:user_id", profileH.ListScans)

	return r
}

// corsMiddleware replica el contrato permisivo del gateway original:
// cualquier origen y el set de headers del cliente web. El preflight
// OPTIONS responde con cuerpo vacio.
func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:    []string{"authorization", "x-client-info", "apikey", "content-type"},
	})
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
