package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
	"github.com/hrdash/hr-dashboard-api/internal/service"
	"github.com/hrdash/hr-dashboard-api/internal/util"
)

type DepartmentHandler struct {
	departments *service.DepartmentService
}

func RegisterDepartments(e *echo.Echo, auth *service.AuthService, departments *service.DepartmentService) {
	handler := &DepartmentHandler{departments: departments}

	g := e.Group("/api/v1/departments", RequireAuth(auth))
	g.GET("", handler.list, RequireCapability(domain.CapabilityViewRecords))
	g.POST("", handler.create, RequireCapability(domain.CapabilityManageRecords))
	g.PUT("/:id", handler.update, RequireCapability(domain.CapabilityManageRecords))
	g.DELETE("/:id", handler.delete, RequireCapability(domain.CapabilityDeleteRecords))
}

type departmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *DepartmentHandler) list(c echo.Context) error {
	departments, err := h.departments.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("departments", departments))
}

func (h *DepartmentHandler) create(c echo.Context) error {
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	name := ""
	if req.Name != nil {
		name = *req.Name
	}
	department, err := h.departments.Create(c.Request().Context(), name, req.Description)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data("department", department))
}

func (h *DepartmentHandler) update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid department id"))
	}
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	department, err := h.departments.Update(c.Request().Context(), id, req.Name, req.Description)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("department", department))
}

func (h *DepartmentHandler) delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid department id"))
	}
	if err := h.departments.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("department deleted successfully"))
}
