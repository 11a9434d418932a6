package handler

import (
	"net/http"

	"marketcal/internal/marketcal/model"
	"marketcal/internal/marketcal/service"

	"github.com/labstack/echo/v4"
)

type CalendarHandler struct {
	Service service.CalendarService
}

func NewCalendarHandler(s service.CalendarService) *CalendarHandler {
	return &CalendarHandler{Service: s}
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// badBody is the shared rejection for malformed request bodies.
func badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
	})
}
