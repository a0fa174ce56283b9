package response

import (
	"bytes"
	"fmt"
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the error envelope. Success bodies are flat maps so each
// endpoint can add its own top level keys next to status.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

func Success(c *gin.Context, fields gin.H) {
	body := gin.H{"status": StatusSuccess}
	for k, v := range fields {
		if k == "status" {
			continue
		}
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func Message(c *gin.Context, msg string) {
	Success(c, gin.H{"message": msg})
}

func Fail(c *gin.Context, code int, msg string) {
	c.JSON(code, Response{
		Status:  StatusError,
		Message: msg,
	})
}

func PanicTrace(err interface{}) string {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%v\n", err)
	for i := 2; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fmt.Fprintf(buf, "%s:%d (0x%x)\n", file, line, pc)
	}
	return buf.String()
}
