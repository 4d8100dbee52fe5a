package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// HTTPError is the response payload for any failed request.
type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("code: %d; message: %s", e.Code, e.Message)
}

// ErrorHandler maps errors to HTTP responses. Usecases return grpc status
// errors (NotFound, InvalidArgument, AlreadyExists, ...) which translate to
// the obvious HTTP codes; everything else is a 500.
func ErrorHandler(log Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if err == nil || c.Response().Committed {
			return
		}

		resp := &HTTPError{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		}

		switch v := err.(type) {
		case *echo.HTTPError:
			resp.Code = v.Code
			resp.Message = fmt.Sprint(v.Message)
		case *HTTPError:
			resp = v
		default:
			if st, ok := status.FromError(err); ok {
				resp.Code = httpCode(st.Code())
				resp.Message = st.Message()
			}
		}

		if err := c.JSON(resp.Code, resp); err != nil {
			log.Errorw("could not respond", "code", resp.Code, "response_body", resp)
		}
	}
}

func httpCode(code codes.Code) int {
	switch code {
	case codes.NotFound:
		return http.StatusNotFound
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.FailedPrecondition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
