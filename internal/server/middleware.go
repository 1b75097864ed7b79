package server

import (
	"time"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	}
	if c.Writer.Status() >= 500 {
		utils.Error("HTTP Request", fields)
		return
	}
	utils.Info("HTTP Request", fields)
}

// CorsMiddleware allows the front-end origin. "*" opens the API to any origin without credentials.
func CorsMiddleware(origin string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Language"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{origin}
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
