package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"

	"marketcal/internal/marketcal/model"

	"github.com/labstack/echo/v4"
)

func setupServer() *echo.Echo {
	return echo.New()
}

// asPrincipal injects an authenticated caller the way AuthMiddleware would.
func asPrincipal(p model.Principal) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(principalContextKey, p)
			return next(c)
		}
	}
}

func performRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
