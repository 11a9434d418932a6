package model

import (
	"strings"
	"time"
)

type CreateCalendarRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	IsTemplate bool   `json:"is_template"`
}

func (r *CreateCalendarRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type UpdateCalendarRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,max=200"`
	IsTemplate *bool   `json:"is_template,omitempty"`
}

func (r *UpdateCalendarRequest) Validate() error {
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
		if *r.Name == "" {
			return &ErrorDetail{Code: "bad_request", Message: "name cannot be empty"}
		}
	}
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type CreateSwimlaneRequest struct {
	Name      string  `json:"name" validate:"required,max=200"`
	Budget    float64 `json:"budget" validate:"gte=0"`
	SortOrder int     `json:"sort_order"`
}

func (r *CreateSwimlaneRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type UpdateSwimlaneRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Budget    *float64 `json:"budget,omitempty" validate:"omitempty,gte=0"`
	SortOrder *int     `json:"sort_order,omitempty"`
}

func (r *UpdateSwimlaneRequest) Validate() error {
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
		if *r.Name == "" {
			return &ErrorDetail{Code: "bad_request", Message: "name cannot be empty"}
		}
	}
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type CreateCampaignRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Color string `json:"color,omitempty" validate:"omitempty,max=32"`
}

func (r *CreateCampaignRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type UpdateCampaignRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Color *string `json:"color,omitempty" validate:"omitempty,max=32"`
}

func (r *UpdateCampaignRequest) Validate() error {
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
		if *r.Name == "" {
			return &ErrorDetail{Code: "bad_request", Message: "name cannot be empty"}
		}
	}
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type CreateActivityRequest struct {
	SwimlaneID   string    `json:"swimlane_id" validate:"required"`
	CampaignID   string    `json:"campaign_id,omitempty"`
	Title        string    `json:"title" validate:"required,max=300"`
	Description  string    `json:"description,omitempty"`
	StartDate    time.Time `json:"start_date" validate:"required"`
	EndDate      time.Time `json:"end_date" validate:"required"`
	Status       string    `json:"status,omitempty"`
	Cost         float64   `json:"cost" validate:"gte=0"`
	ExpectedSAOs int       `json:"expected_saos" validate:"gte=0"`
	ActualSAOs   int       `json:"actual_saos" validate:"gte=0"`
}

func (r *CreateActivityRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))

	// 1. Basic struct validation (required, max, gte)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	// 2. Business logic validation
	if r.EndDate.Before(r.StartDate) {
		return &ErrorDetail{Code: "bad_request", Message: "end_date cannot be before start_date"}
	}
	if r.Status != "" && !AllowedStatuses[r.Status] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid status"}
	}
	return nil
}

// UpdateActivityRequest uses pointers so that only supplied fields are applied;
// the pre-image recorded to history is taken before any of them land.
// Cross-field date checks run in the service against the merged row.
type UpdateActivityRequest struct {
	SwimlaneID   *string    `json:"swimlane_id,omitempty"`
	CampaignID   *string    `json:"campaign_id,omitempty"`
	Title        *string    `json:"title,omitempty" validate:"omitempty,max=300"`
	Description  *string    `json:"description,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Cost         *float64   `json:"cost,omitempty" validate:"omitempty,gte=0"`
	ExpectedSAOs *int       `json:"expected_saos,omitempty" validate:"omitempty,gte=0"`
	ActualSAOs   *int       `json:"actual_saos,omitempty" validate:"omitempty,gte=0"`
}

func (r *UpdateActivityRequest) Validate() error {
	if r.Title != nil {
		*r.Title = strings.TrimSpace(*r.Title)
		if *r.Title == "" {
			return &ErrorDetail{Code: "bad_request", Message: "title cannot be empty"}
		}
	}
	if r.Status != nil {
		*r.Status = strings.ToLower(strings.TrimSpace(*r.Status))
		if !AllowedStatuses[*r.Status] {
			return &ErrorDetail{Code: "bad_request", Message: "invalid status"}
		}
	}
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type GrantPermissionRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	AccessType string `json:"access_type" validate:"required"`
}

func (r *GrantPermissionRequest) Validate() error {
	r.UserID = strings.TrimSpace(r.UserID)
	r.AccessType = strings.ToLower(strings.TrimSpace(r.AccessType))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if !AllowedAccessTypes[r.AccessType] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid access_type: must be one of [view, edit, copy]"}
	}
	return nil
}

type ChangePermissionRequest struct {
	AccessType string `json:"access_type" validate:"required"`
}

func (r *ChangePermissionRequest) Validate() error {
	r.AccessType = strings.ToLower(strings.TrimSpace(r.AccessType))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if !AllowedAccessTypes[r.AccessType] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid access_type: must be one of [view, edit, copy]"}
	}
	return nil
}
