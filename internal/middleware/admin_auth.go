package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Authorizer interface {
	Authorize(bearer, password string) error
}

// AdminAuth gates a route on the password carried in the JSON body, or on
// an admin bearer token. The body is restored for the handler.
func AdminAuth(gate Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var raw []byte
		if c.Request.Body != nil {
			raw, _ = io.ReadAll(c.Request.Body)
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))

		var body struct {
			Password string `json:"password"`
		}
		_ = json.Unmarshal(raw, &body)

		if err := gate.Authorize(bearerToken(c.GetHeader("Authorization")), body.Password); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
