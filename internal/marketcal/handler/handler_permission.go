package handler

import (
	"net/http"

	"marketcal/internal/marketcal/model"

	"github.com/labstack/echo/v4"
)

// GetCalendarPermissions handles GET /calendars/:id/permissions
func (h *CalendarHandler) GetCalendarPermissions(c echo.Context) error {
	perms, err := h.Service.ListCalendarPermissions(c.Request().Context(), currentPrincipal(c), c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, perms)
}

// PostCalendarPermission handles POST /calendars/:id/permissions
func (h *CalendarHandler) PostCalendarPermission(c echo.Context) error {
	var req model.GrantPermissionRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	perm, err := h.Service.GrantCalendarPermission(c.Request().Context(), currentPrincipal(c), c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, perm)
}

// PutCalendarPermission handles PUT /calendars/:id/permissions/:userId
func (h *CalendarHandler) PutCalendarPermission(c echo.Context) error {
	var req model.ChangePermissionRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	perm, err := h.Service.ChangeCalendarPermission(c.Request().Context(), currentPrincipal(c), c.Param("id"), c.Param("userId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, perm)
}

// DeleteCalendarPermission handles DELETE /calendars/:id/permissions/:userId
func (h *CalendarHandler) DeleteCalendarPermission(c echo.Context) error {
	if err := h.Service.RevokeCalendarPermission(c.Request().Context(), currentPrincipal(c), c.Param("id"), c.Param("userId")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// GetCampaignPermissions handles GET /campaigns/:id/permissions
func (h *CalendarHandler) GetCampaignPermissions(c echo.Context) error {
	perms, err := h.Service.ListCampaignPermissions(c.Request().Context(), currentPrincipal(c), c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, perms)
}

// PostCampaignPermission handles POST /campaigns/:id/permissions
func (h *CalendarHandler) PostCampaignPermission(c echo.Context) error {
	var req model.GrantPermissionRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	perm, err := h.Service.GrantCampaignPermission(c.Request().Context(), currentPrincipal(c), c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, perm)
}

// PutCampaignPermission handles PUT /campaigns/:id/permissions/:userId
func (h *CalendarHandler) PutCampaignPermission(c echo.Context) error {
	var req model.ChangePermissionRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	perm, err := h.Service.ChangeCampaignPermission(c.Request().Context(), currentPrincipal(c), c.Param("id"), c.Param("userId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, perm)
}

// DeleteCampaignPermission handles DELETE /campaigns/:id/permissions/:userId
func (h *CalendarHandler) DeleteCampaignPermission(c echo.Context) error {
	if err := h.Service.RevokeCampaignPermission(c.Request().Context(), currentPrincipal(c), c.Param("id"), c.Param("userId")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// GetNotifications handles GET /notifications
func (h *CalendarHandler) GetNotifications(c echo.Context) error {
	notifs, err := h.Service.ListNotifications(c.Request().Context(), currentPrincipal(c))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, notifs)
}

// PutNotificationRead handles PUT /notifications/:id/read
func (h *CalendarHandler) PutNotificationRead(c echo.Context) error {
	if err := h.Service.MarkNotificationRead(c.Request().Context(), currentPrincipal(c), c.Param("id")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
