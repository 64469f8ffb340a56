package back

import (
	"net/http"

	"LiveDesk/pkg/xerr"

	"github.com/gin-gonic/gin"
)

// Response is the uniform JSON envelope for every REST endpoint.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Result picks the success or error shape based on err.
func Result(c *gin.Context, data interface{}, err error) {
	if err == nil {
		Success(c, data)
		return
	}

	if e, ok := err.(*xerr.CodeError); ok {
		Error(c, e.Code, e.Message)
		return
	}

	Error(c, xerr.ErrServerError.Code, xerr.ErrServerError.Message)
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    xerr.OK,
		Message: "Success",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	status := http.StatusOK
	switch code {
	case xerr.BadRequest, xerr.Unauthorized, xerr.Forbidden, xerr.NotFound:
		status = code
	case xerr.InternalServerError:
		status = http.StatusInternalServerError
	}
	c.JSON(status, Response{
		Code:    code,
		Message: message,
	})
}
