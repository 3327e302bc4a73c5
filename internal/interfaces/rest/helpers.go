package rest

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cthulhu-engineer/goit-cs-hw-06/pkg/errors"
)

// RespondAppError sends a standardised JSON error response using pkg/errors
func RespondAppError(c *gin.Context, err error) {
	code := errors.GetHTTPStatus(err)
	resp := errors.ToResponse(err)

	if code >= 500 {
		log.Printf("❌ ERROR [%d] %s %s: %s", code, c.Request.Method, c.Request.URL.Path, resp.Message)
	}

	c.JSON(code, gin.H{
		"message": resp.Message,
		"code":    resp.Code,
		"data":    nil,
	})
}

// HandleGetEnvelope executes a read action and returns the result wrapped in a JSON key
// Response: { [key]: result }
func HandleGetEnvelope(c *gin.Context, key string, action func() (interface{}, error)) {
	result, err := action()
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{key: result})
}
