package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows every origin. Preflight requests get 204 with the header set
// browsers send when calling the generate-review function.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"authorization", "x-client-info", "apikey", "content-type"},
		AllowCredentials: false,
	})
}
