// Package docs serves the API's OpenAPI document. The document is embedded
// at build time and exposed at /api-docs.
package docs

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed openapi.json
var openAPISpec []byte

// Serve returns a handler that responds with the embedded OpenAPI document.
func Serve() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", openAPISpec)
	}
}
