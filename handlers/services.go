package handlers

import (
	"net/http"

	"serviceboard/models"
	"serviceboard/services/catalog"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves the service listing endpoints.
type ServiceHandler struct {
	Service       catalog.CatalogService
	ExposeDetails bool
}

func NewServiceHandler(svc catalog.CatalogService, exposeDetails bool) *ServiceHandler {
	return &ServiceHandler{Service: svc, ExposeDetails: exposeDetails}
}

// ListServicesHandler handles GET /services.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	result, err := h.Service.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, err, "ListServices: failed to fetch services", h.ExposeDetails)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetServiceHandler handles GET /service/:id.
func (h *ServiceHandler) GetServiceHandler(c *gin.Context) {
	service, err := h.Service.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "GetService: failed to fetch service", h.ExposeDetails)
		return
	}
	c.JSON(http.StatusOK, service)
}

// CreateServiceHandler handles POST /services.
func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		invalidBody(c, err)
		return
	}

	result, err := h.Service.CreateService(c.Request.Context(), &service)
	if err != nil {
		respondError(c, err, "CreateService: failed to insert service", h.ExposeDetails)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListProviderServicesHandler handles GET /services/user/:email.
// The route guard has already matched the credential against :email.
func (h *ServiceHandler) ListProviderServicesHandler(c *gin.Context) {
	result, err := h.Service.ListProviderServices(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err, "ListProviderServices: failed to fetch services", h.ExposeDetails)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteServiceHandler handles DELETE /service/:id.
func (h *ServiceHandler) DeleteServiceHandler(c *gin.Context) {
	result, err := h.Service.DeleteService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "DeleteService: failed to delete service", h.ExposeDetails)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateServiceHandler handles PUT /service/:id.
func (h *ServiceHandler) UpdateServiceHandler(c *gin.Context) {
	var update models.ServiceUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		invalidBody(c, err)
		return
	}

	if _, err := h.Service.UpdateService(c.Request.Context(), c.Param("id"), update); err != nil {
		respondError(c, err, "UpdateService: failed to update service", h.ExposeDetails)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service updated successfully"})
}
