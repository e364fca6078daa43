package http

import (
	"log/slog"
	"net/http"

	"catering/api/openapi"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// BaseURL prefixes every API operation.
const BaseURL = "/api/v1"

// NewRouter builds the echo instance serving si, the health probe and, when
// specJSON is non-empty, the OpenAPI document and Swagger UI.
func NewRouter(si ServerInterface, specJSON []byte, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	if len(specJSON) > 0 {
		openapi.RegisterSwagger(specJSON)
		e.GET("/openapi.json", func(c echo.Context) error {
			return c.JSONBlob(http.StatusOK, specJSON)
		})
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	RegisterHandlersWithBaseURL(e, si, BaseURL)
	return e
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}

			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(c.Request().Context(), level, "request handled", attrs...)
			return nil
		},
	})
}
