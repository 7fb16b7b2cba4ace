package handlers

import (
	"net/http"

	"neads_backend/internal/middleware"
	"neads_backend/internal/models"
	"neads_backend/internal/services"
	"neads_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CreatorHandler struct {
	*BaseHandler
	creatorService services.CreatorService
}

func NewCreatorHandler(base *BaseHandler, creatorService services.CreatorService) *CreatorHandler {
	return &CreatorHandler{
		BaseHandler:    base,
		creatorService: creatorService,
	}
}

func (h *CreatorHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Anonymous visitors get the masked public view.
	public := r.Group("/creators")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("/:creatorId", h.GetCreator)
	}

	protected := r.Group("/creators")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.PUT("/:creatorId", h.UpdateCreator)
	}

	staff := r.Group("/creators")
	staff.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleConsultant))
	{
		staff.POST("", h.CreateCreator)
		staff.POST("/:creatorId/verify", h.VerifyCreator)
	}

	admin := r.Group("/creators")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.DELETE("/:creatorId", h.DeleteCreator)
	}

	locations := r.Group("/locations")
	{
		locations.GET("/cities", h.Cities)
	}
}

// CreateCreator registers an unmanaged profile, one without a linked
// user account. Creator accounts get their profile at registration.
func (h *CreatorHandler) CreateCreator(c *gin.Context) {
	var req dto.CreateCreatorRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.creatorService.Create(c.Request.Context(), h.GetDB(c), &req, nil)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *CreatorHandler) GetCreator(c *gin.Context) {
	creatorID := c.Param("creatorId")

	resp, err := h.creatorService.Get(c.Request.Context(), h.GetDB(c), creatorID, h.GetRequester(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CreatorHandler) UpdateCreator(c *gin.Context) {
	requester, ok := h.RequireRequester(c)
	if !ok {
		return
	}

	var req dto.UpdateCreatorRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.creatorService.Update(c.Request.Context(), h.GetDB(c), c.Param("creatorId"), &req, requester)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CreatorHandler) DeleteCreator(c *gin.Context) {
	requester, ok := h.RequireRequester(c)
	if !ok {
		return
	}

	if err := h.creatorService.Delete(c.Request.Context(), h.GetDB(c), c.Param("creatorId"), requester); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Creator deleted"})
}

func (h *CreatorHandler) VerifyCreator(c *gin.Context) {
	requester, ok := h.RequireRequester(c)
	if !ok {
		return
	}

	var req dto.VerifyCreatorRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.creatorService.SetVerified(h.GetDB(c), c.Param("creatorId"), req.Verified, requester); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"verified": req.Verified})
}

func (h *CreatorHandler) Cities(c *gin.Context) {
	cities, err := h.creatorService.Cities(h.GetDB(c), c.Query("prefix"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cities": cities})
}
