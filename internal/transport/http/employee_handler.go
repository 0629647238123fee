package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
	"github.com/hrdash/hr-dashboard-api/internal/media"
	"github.com/hrdash/hr-dashboard-api/internal/service"
	"github.com/hrdash/hr-dashboard-api/internal/util"
)

type EmployeeHandler struct {
	employees *service.EmployeeService
}

func RegisterEmployees(e *echo.Echo, auth *service.AuthService, employees *service.EmployeeService) {
	handler := &EmployeeHandler{employees: employees}

	g := e.Group("/api/v1/employees", RequireAuth(auth))
	g.GET("", handler.list, RequireCapability(domain.CapabilityViewRecords))
	g.GET("/:id", handler.get, RequireCapability(domain.CapabilityViewRecords))
	g.POST("", handler.create, RequireCapability(domain.CapabilityManageRecords))
	g.PUT("/:id", handler.update, RequireCapability(domain.CapabilityManageRecords))
	g.POST("/:id/photo", handler.uploadPhoto, RequireCapability(domain.CapabilityManageRecords))
	// Removing an employee record is ADMIN-only; HR may create and update
	// but not delete.
	g.DELETE("/:id", handler.delete, RequireCapability(domain.CapabilityDeleteRecords))
}

func (h *EmployeeHandler) list(c echo.Context) error {
	employees, err := h.employees.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("employees", employees))
}

func (h *EmployeeHandler) get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid employee id"))
	}
	employee, err := h.employees.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("employee", employee))
}

func (h *EmployeeHandler) create(c echo.Context) error {
	var fields domain.EmployeeFields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	employee, err := h.employees.Create(c.Request().Context(), fields)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data("employee", employee))
}

func (h *EmployeeHandler) update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid employee id"))
	}
	var fields domain.EmployeeFields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	employee, err := h.employees.Update(c.Request().Context(), id, fields)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("employee", employee))
}

func (h *EmployeeHandler) delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid employee id"))
	}
	if err := h.employees.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("employee deleted successfully"))
}

func (h *EmployeeHandler) uploadPhoto(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid employee id"))
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("photo file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("unable to read photo"))
	}
	defer file.Close()

	url, err := h.employees.UploadPhoto(c.Request().Context(), id, media.Upload{
		Reader:      file,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("photo_url", url))
}
