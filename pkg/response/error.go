package response

import (
	"Noted/pkg/log"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BizError carries the http status to answer with.
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func BadRequest(msg string) *BizError   { return NewError(http.StatusBadRequest, msg) }
func NotFound(msg string) *BizError     { return NewError(http.StatusNotFound, msg) }
func Unauthorized(msg string) *BizError { return NewError(http.StatusUnauthorized, msg) }
func Internal(msg string) *BizError     { return NewError(http.StatusInternalServerError, msg) }

// ErrorMiddleware is the last-resort net: it turns panics and errors
// attached through c.Error into the error envelope. Stacks are only
// exposed when debug is on.
func ErrorMiddleware(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				trace := PanicTrace(r)
				log.L.Error("panic recovered", zap.Any("panic", r), zap.String("path", c.Request.URL.Path))
				resp := Response{
					Status:  StatusError,
					Message: "Internal Server Error",
				}
				if debug {
					resp.Stack = trace
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log.L.Error("request error", zap.Error(err), zap.String("path", c.Request.URL.Path))

		var be *BizError
		if errors.As(err, &be) {
			Fail(c, be.Code, be.Msg)
			c.Abort()
			return
		}

		resp := Response{Status: StatusError, Message: err.Error()}
		if resp.Message == "" {
			resp.Message = "Internal Server Error"
		}
		if debug {
			resp.Stack = fmt.Sprintf("%+v", err)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Status:  StatusError,
		Message: msg,
	})
}
