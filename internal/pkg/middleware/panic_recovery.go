package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/utils"
)

// PanicRecovery turns a handler panic into a 500 and logs it with its stack
func PanicRecovery(l *logger.ZapLogger) echo.MiddlewareFunc {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				panicErr := fmt.Errorf("panic: %v", r)
				if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
					txn.NoticeError(panicErr)
				}
				l.Error("Recovered from panic",
					logger.String("method", c.Request().Method),
					logger.String("path", c.Request().URL.Path),
					logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
					logger.Any("panic", r),
					logger.String("stack", string(debug.Stack())))

				if !c.Response().Committed {
					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
				}
			}()
			return next(c)
		}
	}
}
