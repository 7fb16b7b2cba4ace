package handlers

import (
	"net/http"

	"neads_backend/internal/middleware"
	"neads_backend/internal/models"
	"neads_backend/internal/services"
	"neads_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TaxonomyHandler struct {
	*BaseHandler
	taxonomyService services.TaxonomyService
}

func NewTaxonomyHandler(base *BaseHandler, taxonomyService services.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{
		BaseHandler:     base,
		taxonomyService: taxonomyService,
	}
}

func (h *TaxonomyHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/domains", h.ListDomains)
	r.GET("/content-types", h.ListContentTypes)

	staff := r.Group("")
	staff.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleConsultant))
	{
		staff.POST("/domains", h.CreateDomain)
		staff.POST("/content-types", h.CreateContentType)
	}
}

func (h *TaxonomyHandler) ListDomains(c *gin.Context) {
	resp, err := h.taxonomyService.ListDomains(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"domains": resp})
}

func (h *TaxonomyHandler) CreateDomain(c *gin.Context) {
	var req dto.CreateTagRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.taxonomyService.CreateDomain(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *TaxonomyHandler) ListContentTypes(c *gin.Context) {
	resp, err := h.taxonomyService.ListContentTypes(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content_types": resp})
}

func (h *TaxonomyHandler) CreateContentType(c *gin.Context) {
	var req dto.CreateTagRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.taxonomyService.CreateContentType(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
