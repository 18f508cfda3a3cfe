package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

// DefaultStackSize is the default stack trace size (4KB).
const DefaultStackSize = 4 << 10

// RecoveryConfig holds configuration for the recovery middleware.
type RecoveryConfig struct {
	// Logger is the structured logger to use for panic logging.
	Logger *slog.Logger

	// StackSize is the maximum size of the stack trace to capture.
	// Default is 4KB.
	StackSize int

	// DisableStackAll disables capturing all goroutines stack traces.
	// When false, only the current goroutine's stack is captured.
	DisableStackAll bool

	// DisablePrintStack disables printing the stack trace to the logger.
	DisablePrintStack bool
}

// DefaultRecoveryConfig returns a RecoveryConfig with sensible defaults.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{
		Logger:          slog.Default(),
		StackSize:       DefaultStackSize,
		DisableStackAll: true,
	}
}

// Recovery returns a middleware that recovers from panics and logs the error.
func Recovery(logger *slog.Logger) echo.MiddlewareFunc {
	config := DefaultRecoveryConfig()
	config.Logger = logger
	return RecoveryWithConfig(config)
}

// RecoveryWithConfig returns a recovery middleware with custom configuration.
// The stack trace goes to the log only; the client gets a generic 500.
func RecoveryWithConfig(config RecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.StackSize == 0 {
		config.StackSize = DefaultStackSize
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					stack := make([]byte, config.StackSize)
					length := runtime.Stack(stack, !config.DisableStackAll)
					stack = stack[:length]

					req := c.Request()
					requestID := c.Response().Header().Get(echo.HeaderXRequestID)
					if requestID == "" {
						requestID = req.Header.Get(echo.HeaderXRequestID)
					}

					logAttrs := []any{
						slog.String("error", err.Error()),
						slog.String("method", req.Method),
						slog.String("path", req.URL.Path),
						slog.String("remote_ip", c.RealIP()),
					}

					if requestID != "" {
						logAttrs = append(logAttrs, slog.String("request_id", requestID))
					}

					if !config.DisablePrintStack {
						logAttrs = append(logAttrs, slog.String("stack", string(stack)))
					}

					config.Logger.Error("panic recovered", logAttrs...)

					if !c.Response().Committed {
						_ = c.JSON(http.StatusInternalServerError, map[string]string{
							"message": "Internal server error",
						})
					}
				}
			}()

			return next(c)
		}
	}
}
