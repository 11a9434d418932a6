package handler

import (
	"net/http"

	"marketcal/internal/marketcal/model"

	"github.com/labstack/echo/v4"
)

// PostCalendar handles POST /calendars
func (h *CalendarHandler) PostCalendar(c echo.Context) error {
	var req model.CreateCalendarRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	cal, err := h.Service.CreateCalendar(c.Request().Context(), currentPrincipal(c), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, cal)
}

// GetCalendars handles GET /calendars — every calendar the caller can reach,
// with the resolved access level.
func (h *CalendarHandler) GetCalendars(c echo.Context) error {
	cals, err := h.Service.ListAccessibleCalendars(c.Request().Context(), currentPrincipal(c))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, cals)
}

// GetCalendar handles GET /calendars/:id
func (h *CalendarHandler) GetCalendar(c echo.Context) error {
	cal, err := h.Service.GetCalendar(c.Request().Context(), currentPrincipal(c), c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, cal)
}

// PutCalendar handles PUT /calendars/:id
func (h *CalendarHandler) PutCalendar(c echo.Context) error {
	var req model.UpdateCalendarRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	cal, err := h.Service.UpdateCalendar(c.Request().Context(), currentPrincipal(c), c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, cal)
}

// DeleteCalendar handles DELETE /calendars/:id
func (h *CalendarHandler) DeleteCalendar(c echo.Context) error {
	if err := h.Service.DeleteCalendar(c.Request().Context(), currentPrincipal(c), c.Param("id")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// PostSwimlane handles POST /calendars/:id/swimlanes
func (h *CalendarHandler) PostSwimlane(c echo.Context) error {
	var req model.CreateSwimlaneRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	lane, err := h.Service.CreateSwimlane(c.Request().Context(), currentPrincipal(c), c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, lane)
}

// GetSwimlanes handles GET /calendars/:id/swimlanes
func (h *CalendarHandler) GetSwimlanes(c echo.Context) error {
	lanes, err := h.Service.ListSwimlanes(c.Request().Context(), currentPrincipal(c), c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, lanes)
}

// PutSwimlane handles PUT /swimlanes/:id
func (h *CalendarHandler) PutSwimlane(c echo.Context) error {
	var req model.UpdateSwimlaneRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	lane, err := h.Service.UpdateSwimlane(c.Request().Context(), currentPrincipal(c), c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, lane)
}

// DeleteSwimlane handles DELETE /swimlanes/:id
func (h *CalendarHandler) DeleteSwimlane(c echo.Context) error {
	if err := h.Service.DeleteSwimlane(c.Request().Context(), currentPrincipal(c), c.Param("id")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
