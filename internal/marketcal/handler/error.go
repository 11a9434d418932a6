package handler

import (
	"errors"
	"net/http"

	"marketcal/internal/marketcal/model"
	"marketcal/internal/marketcal/service"
)

// Helper to map errors to HTTP status and body
func httpError(err error) (int, interface{}) {
	var code string
	var msg string
	var status int

	switch err {
	case service.ErrUnauthorized:
		status = http.StatusUnauthorized
		code = "unauthorized"
		msg = "Unauthorized"
	case service.ErrForbidden:
		status = http.StatusForbidden
		code = "forbidden"
		msg = "Permission denied"
	case service.ErrNotFound:
		status = http.StatusNotFound
		code = "not_found"
		msg = "Resource not found"
	case service.ErrConflict:
		status = http.StatusConflict
		code = "conflict"
		msg = "Resource already exists"
	case service.ErrForeignKey:
		status = http.StatusConflict
		code = "foreign_key_violation"
		msg = "A parent resource no longer exists"
	case service.ErrInvalid:
		status = http.StatusUnprocessableEntity
		code = "invalid_undo"
		msg = "History entry has no previous state to restore"
	case service.ErrBadRequest:
		status = http.StatusBadRequest
		code = "bad_request"
		msg = "Invalid input"
	default:
		status = http.StatusInternalServerError
		code = "internal_error"
		msg = err.Error()
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: msg},
	}
}

// validationError shapes a request Validate() failure into the standard error
// body, preserving the field-level message.
func validationError(err error) model.ErrorResponse {
	var detail *model.ErrorDetail
	if errors.As(err, &detail) {
		return model.ErrorResponse{Error: *detail}
	}
	return model.ErrorResponse{
		Error: model.ErrorDetail{Code: "bad_request", Message: err.Error()},
	}
}
