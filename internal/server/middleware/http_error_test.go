package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type nopLogger struct{}

func (nopLogger) Infow(string, ...any)  {}
func (nopLogger) Warnw(string, ...any)  {}
func (nopLogger) Errorw(string, ...any) {}

func handleError(t *testing.T, err error) (int, HTTPError) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ErrorHandler(nopLogger{})(err, c)

	var body HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestErrorHandlerStatusCodes(t *testing.T) {
	tests := []struct {
		code codes.Code
		want int
	}{
		{codes.NotFound, http.StatusNotFound},
		{codes.InvalidArgument, http.StatusBadRequest},
		{codes.AlreadyExists, http.StatusConflict},
		{codes.Unauthenticated, http.StatusUnauthorized},
		{codes.PermissionDenied, http.StatusForbidden},
		{codes.FailedPrecondition, http.StatusConflict},
		{codes.Internal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			code, body := handleError(t, status.Errorf(tt.code, "boom"))
			assert.Equal(t, tt.want, code)
			assert.Equal(t, tt.want, body.Code)
			assert.Equal(t, "boom", body.Message)
		})
	}
}

func TestErrorHandlerEchoError(t *testing.T) {
	code, body := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "bad input"))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "bad input", body.Message)
}

func TestErrorHandlerOpaqueError(t *testing.T) {
	code, body := handleError(t, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, code)
	// Internals never leak into the response body.
	assert.NotContains(t, body.Message, assert.AnError.Error())
}
