package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	allowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	allowHeaders = []string{"Content-Type", "X-Amz-Date", "Authorization", "X-Api-Key", "X-Amz-Security-Token"}
)

// RequestID tags every request with X-Request-ID, reusing the caller's when sent.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("%.8s", uuid.New().String())
		}
		c.Header("X-Request-ID", requestID)
		c.Set("requestID", requestID)

		c.Next()
	}
}

// CORS answers browser preflights for any origin.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              allowMethods,
		AllowHeaders:              allowHeaders,
		OptionsResponseStatusCode: http.StatusOK,
	})
}

// PermissiveHeaders stamps the CORS headers on responses to requests that
// carry no Origin, and answers OPTIONS on any path with an empty 200.
func PermissiveHeaders() gin.HandlerFunc {
	methods := strings.Join(allowMethods, ",")
	headers := strings.Join(allowHeaders, ",")
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
