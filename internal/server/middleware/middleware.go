package middleware

import "github.com/labstack/echo/v4"

// Logger is the subset of the structured logger the middleware needs.
type Logger interface {
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

type Skipper func(c echo.Context) bool

func DefaultSkipper(echo.Context) bool {
	return false
}
