package handlers

import (
	"net/http"

	"neads_backend/internal/middleware"
	"neads_backend/internal/models"
	"neads_backend/internal/services"
	"neads_backend/internal/services/dto"
	"neads_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	*BaseHandler
	mediaService services.MediaService
}

func NewMediaHandler(base *BaseHandler, mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{
		BaseHandler:  base,
		mediaService: mediaService,
	}
}

func (h *MediaHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/creators/:creatorId/media")
	{
		public.GET("", h.ListMedia)
	}

	protected := r.Group("/creators/:creatorId/media")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.UploadMedia)
		protected.PUT("/reorder", h.ReorderMedia)
	}

	media := r.Group("/media")
	media.Use(middleware.AuthMiddleware())
	{
		media.DELETE("/:mediaId", h.DeleteMedia)
	}

	staff := r.Group("/media")
	staff.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleConsultant))
	{
		staff.POST("/:mediaId/verify", h.VerifyMedia)
	}
}

func (h *MediaHandler) ListMedia(c *gin.Context) {
	resp, err := h.mediaService.List(c.Request.Context(), h.GetDB(c), c.Param("creatorId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MediaHandler) UploadMedia(c *gin.Context) {
	requester, ok := h.RequireRequester(c)
	if !ok {
		return
	}

	var req dto.UploadMediaRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form fields: "+err.Error()))
		return
	}
	if !h.validate(c, &req) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file field"))
		return
	}

	// Optional for images, required for videos.
	thumbHeader, err := c.FormFile("thumbnail")
	if err != nil {
		thumbHeader = nil
	}

	resp, err := h.mediaService.Upload(c.Request.Context(), h.GetDB(c), c.Param("creatorId"), fileHeader, thumbHeader, &req, requester)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *MediaHandler) ReorderMedia(c *gin.Context) {
	requester, ok := h.RequireRequester(c)
	if !ok {
		return
	}

	var req dto.ReorderMediaRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.mediaService.Reorder(h.GetDB(c), c.Param("creatorId"), &req, requester); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}

func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	requester, ok := h.RequireRequester(c)
	if !ok {
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), h.GetDB(c), c.Param("mediaId"), requester); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Media deleted"})
}

func (h *MediaHandler) VerifyMedia(c *gin.Context) {
	requester, ok := h.RequireRequester(c)
	if !ok {
		return
	}

	var req dto.VerifyCreatorRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.mediaService.SetVerified(h.GetDB(c), c.Param("mediaId"), req.Verified, requester); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"verified": req.Verified})
}
