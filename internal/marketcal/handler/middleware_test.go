package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddlewareMintsUUID(t *testing.T) {
	e := setupServer()
	e.Use(RequestIDMiddleware)
	e.GET("/health", HealthCheck)

	rec := performRequest(e, http.MethodGet, "/health", nil, nil)

	got := rec.Header().Get(echo.HeaderXRequestID)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestRequestIDMiddlewareKeepsCallerID(t *testing.T) {
	e := setupServer()
	e.Use(RequestIDMiddleware)
	e.GET("/health", HealthCheck)

	rec := performRequest(e, http.MethodGet, "/health", nil, map[string]string{
		echo.HeaderXRequestID: "caller-supplied",
	})

	assert.Equal(t, "caller-supplied", rec.Header().Get(echo.HeaderXRequestID))
}
