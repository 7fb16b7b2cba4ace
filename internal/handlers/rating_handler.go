package handlers

import (
	"net/http"

	"neads_backend/internal/middleware"
	"neads_backend/internal/models"
	"neads_backend/internal/services"
	"neads_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	*BaseHandler
	ratingService services.RatingService
}

func NewRatingHandler(base *BaseHandler, ratingService services.RatingService) *RatingHandler {
	return &RatingHandler{
		BaseHandler:   base,
		ratingService: ratingService,
	}
}

func (h *RatingHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/creators/:creatorId/ratings", h.GetBreakdown)

	ratings := r.Group("/ratings")
	ratings.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleConsultant))
	{
		ratings.POST("", h.CreateRating)
		ratings.PUT("/:ratingId", h.UpdateRating)
		ratings.DELETE("/:ratingId", h.DeleteRating)
	}
}

func (h *RatingHandler) GetBreakdown(c *gin.Context) {
	resp, err := h.ratingService.Breakdown(h.GetDB(c), c.Param("creatorId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *RatingHandler) CreateRating(c *gin.Context) {
	requester, ok := h.RequireRequester(c)
	if !ok {
		return
	}

	var req dto.CreateRatingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.ratingService.Create(h.GetDB(c), requester, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *RatingHandler) UpdateRating(c *gin.Context) {
	requester, ok := h.RequireRequester(c)
	if !ok {
		return
	}

	var req dto.UpdateRatingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.ratingService.Update(h.GetDB(c), requester, c.Param("ratingId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *RatingHandler) DeleteRating(c *gin.Context) {
	requester, ok := h.RequireRequester(c)
	if !ok {
		return
	}

	if err := h.ratingService.Delete(h.GetDB(c), requester, c.Param("ratingId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted"})
}
