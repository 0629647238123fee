package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
	"github.com/hrdash/hr-dashboard-api/internal/service"
	"github.com/hrdash/hr-dashboard-api/internal/util"
)

type RoleHandler struct {
	roles *service.RoleService
}

func RegisterRoles(e *echo.Echo, auth *service.AuthService, roles *service.RoleService) {
	handler := &RoleHandler{roles: roles}

	g := e.Group("/api/v1/roles", RequireAuth(auth))
	g.GET("", handler.list, RequireCapability(domain.CapabilityViewRecords))
	g.POST("", handler.create, RequireCapability(domain.CapabilityManageRecords))
	g.PUT("/:id", handler.update, RequireCapability(domain.CapabilityManageRecords))
	// Job roles carry no ADMIN-only delete rule, unlike employees and
	// departments.
	g.DELETE("/:id", handler.delete, RequireCapability(domain.CapabilityManageRecords))
}

type roleRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *RoleHandler) list(c echo.Context) error {
	roles, err := h.roles.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("roles", roles))
}

func (h *RoleHandler) create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	name := ""
	if req.Name != nil {
		name = *req.Name
	}
	role, err := h.roles.Create(c.Request().Context(), name, req.Description)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data("role", role))
}

func (h *RoleHandler) update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid role id"))
	}
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	role, err := h.roles.Update(c.Request().Context(), id, req.Name, req.Description)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("role", role))
}

func (h *RoleHandler) delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid role id"))
	}
	if err := h.roles.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("role deleted successfully"))
}
