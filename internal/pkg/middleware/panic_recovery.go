package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/kshitijrv/mingle/internal/pkg/logger"
	"github.com/kshitijrv/mingle/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// trace, and answers with a generic 500 so no unhandled failure escapes
// without a status code.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()

					zapLogger.Error("Panic recovered",
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()),
						logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
						logger.Any("panic", r),
						logger.String("stacktrace", string(stack)),
					)

					if !c.Response().Committed {
						_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
					}
				}
			}()

			return next(c)
		}
	}
}
