package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key the logging middleware stores the
// request id under.
const RequestIDKey = "request_id"

// Response is the error envelope of every non-2xx answer. Detail carries
// machine readable context such as a rejection reason.
type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

type Body struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

func New(c *gin.Context, status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	if c != nil {
		resp.Error.RequestID = c.GetString(RequestIDKey)
	}
	return resp
}

// Internal is the answer for failures the client cannot act on.
func Internal(c *gin.Context) Response {
	return New(c, http.StatusInternalServerError, "Internal server error", nil)
}

// AbortWithError answers with msg and keeps err on the context so the
// error middleware can log it.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError called with nil error")
	}

	resp := New(c, status, msg, detail)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
