package handler

import (
	"net/http"

	"marketcal/internal/marketcal/model"

	"github.com/labstack/echo/v4"
)

// PostCampaign handles POST /calendars/:id/campaigns
func (h *CalendarHandler) PostCampaign(c echo.Context) error {
	var req model.CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	camp, err := h.Service.CreateCampaign(c.Request().Context(), currentPrincipal(c), c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, camp)
}

// GetCampaign handles GET /campaigns/:id
func (h *CalendarHandler) GetCampaign(c echo.Context) error {
	camp, err := h.Service.GetCampaign(c.Request().Context(), currentPrincipal(c), c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, camp)
}

// GetCampaigns handles GET /calendars/:id/campaigns
func (h *CalendarHandler) GetCampaigns(c echo.Context) error {
	camps, err := h.Service.ListCampaigns(c.Request().Context(), currentPrincipal(c), c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, camps)
}

// PutCampaign handles PUT /campaigns/:id
func (h *CalendarHandler) PutCampaign(c echo.Context) error {
	var req model.UpdateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	camp, err := h.Service.UpdateCampaign(c.Request().Context(), currentPrincipal(c), c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, camp)
}

// DeleteCampaign handles DELETE /campaigns/:id
func (h *CalendarHandler) DeleteCampaign(c echo.Context) error {
	if err := h.Service.DeleteCampaign(c.Request().Context(), currentPrincipal(c), c.Param("id")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
