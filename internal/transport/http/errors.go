package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrdash/hr-dashboard-api/internal/service"
	"github.com/hrdash/hr-dashboard-api/internal/util"
)

// writeServiceError maps service sentinel errors to HTTP responses. Anything
// unrecognized is logged and reported generically so internals never leak.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrMalformedOTP),
		errors.Is(err, service.ErrInvalidOTP),
		errors.Is(err, service.ErrOTPExpired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrEmployeeValidation),
		errors.Is(err, service.ErrDepartmentNameRequired),
		errors.Is(err, service.ErrRoleNameRequired),
		errors.Is(err, service.ErrPhotoTooLarge),
		errors.Is(err, service.ErrPhotoUnsupported):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidGoogleToken),
		errors.Is(err, service.ErrSessionInvalid):
		return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))

	case errors.Is(err, service.ErrHRCapacityReached):
		return c.JSON(http.StatusForbidden, util.Error(err.Error()))

	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrEmployeeNotFound),
		errors.Is(err, service.ErrDepartmentNotFound),
		errors.Is(err, service.ErrRoleNotFound):
		return c.JSON(http.StatusNotFound, util.Error(err.Error()))

	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrEmployeeEmailTaken),
		errors.Is(err, service.ErrDepartmentNameTaken),
		errors.Is(err, service.ErrRoleNameTaken):
		return c.JSON(http.StatusUnprocessableEntity, util.Error(err.Error()))

	case errors.Is(err, service.ErrOTPDeliveryFailed):
		return c.JSON(http.StatusInternalServerError, util.Error("failed to send OTP email, please try again later"))

	default:
		c.Logger().Errorf("internal error: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("an error occurred, please try again later"))
	}
}
