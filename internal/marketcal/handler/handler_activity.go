package handler

import (
	"net/http"
	"strconv"

	"marketcal/internal/marketcal/model"

	"github.com/labstack/echo/v4"
)

// PostActivity handles POST /calendars/:id/activities
func (h *CalendarHandler) PostActivity(c echo.Context) error {
	var req model.CreateActivityRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	act, err := h.Service.CreateActivity(c.Request().Context(), currentPrincipal(c), c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, act)
}

// GetActivity handles GET /activities/:id
func (h *CalendarHandler) GetActivity(c echo.Context) error {
	act, err := h.Service.GetActivity(c.Request().Context(), currentPrincipal(c), c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, act)
}

// GetActivities handles GET /calendars/:id/activities
func (h *CalendarHandler) GetActivities(c echo.Context) error {
	acts, err := h.Service.ListActivities(c.Request().Context(), currentPrincipal(c), c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, acts)
}

// PutActivity handles PUT /activities/:id
func (h *CalendarHandler) PutActivity(c echo.Context) error {
	var req model.UpdateActivityRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	act, err := h.Service.UpdateActivity(c.Request().Context(), currentPrincipal(c), c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, act)
}

// DeleteActivity handles DELETE /activities/:id
func (h *CalendarHandler) DeleteActivity(c echo.Context) error {
	if err := h.Service.DeleteActivity(c.Request().Context(), currentPrincipal(c), c.Param("id")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// GetActivityHistory handles GET /activities/:id/history
func (h *CalendarHandler) GetActivityHistory(c echo.Context) error {
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	offset, _ := strconv.ParseInt(c.QueryParam("offset"), 10, 64)
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	entries, total, err := h.Service.ListActivityHistory(c.Request().Context(), currentPrincipal(c), c.Param("id"), limit, offset)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"history": entries,
		"total":   total,
	})
}

// PostUndo handles POST /history/:id/undo
func (h *CalendarHandler) PostUndo(c echo.Context) error {
	act, err := h.Service.Undo(c.Request().Context(), currentPrincipal(c), c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, act)
}
