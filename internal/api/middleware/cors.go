package middleware

import (
	"net/http"
	"strings"

	"widget-admin-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// PublicPrefix is the path prefix of the endpoints called by embedded widgets
const PublicPrefix = "/public/"

// CORS allows the admin UI origins with credentials on every route except the
// public widget endpoints, which reflect any origin without credentials.
// Per-widget allowed_origins are enforced by the public handlers.
func CORS(cfg *config.Config) gin.HandlerFunc {
	admin := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           600,
	})
	public := cors.New(cors.Options{
		AllowOriginFunc: func(string) bool { return true },
		AllowedMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:  []string{"Content-Type", RequestIDHeader},
		MaxAge:          600,
	})

	return func(ctx *gin.Context) {
		c := admin
		if strings.HasPrefix(ctx.Request.URL.Path, PublicPrefix) {
			c = public
		}

		c.HandlerFunc(ctx.Writer, ctx.Request)
		if ctx.Request.Method == http.MethodOptions && ctx.GetHeader("Access-Control-Request-Method") != "" {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}
