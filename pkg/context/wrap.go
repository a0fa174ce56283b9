package context

import (
	"Noted/pkg/log"
	"Noted/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

type HandlerFunc func(*gin.Context) error

// Wrap adapts an error-returning handler. Business errors keep their
// status; anything else becomes a 500 in the error envelope.
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			log.L.Error("unhandled handler error", zap.Error(err), zap.String("path", c.FullPath()))
			response.Fail(c, http.StatusInternalServerError, "Server error")
		}
	}
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id missing from context")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id has unexpected type")
	}

	return uid, nil
}

func GetUsername(c *gin.Context) string {
	return c.GetString(CtxUsername)
}
