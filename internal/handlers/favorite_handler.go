package handlers

import (
	"net/http"

	"neads_backend/internal/middleware"
	"neads_backend/internal/services"
	"neads_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	*BaseHandler
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(base *BaseHandler, favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		BaseHandler:     base,
		favoriteService: favoriteService,
	}
}

func (h *FavoriteHandler) RegisterRoutes(r *gin.RouterGroup) {
	favorites := r.Group("/favorites")
	favorites.Use(middleware.AuthMiddleware())
	{
		favorites.GET("", h.ListFavorites)
	}

	creators := r.Group("/creators/:creatorId/favorite")
	creators.Use(middleware.AuthMiddleware())
	{
		creators.POST("", h.ToggleFavorite)
		creators.PUT("/note", h.UpdateNote)
	}
}

func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
	requester, ok := h.RequireRequester(c)
	if !ok {
		return
	}

	resp, err := h.favoriteService.Toggle(h.GetDB(c), requester, c.Param("creatorId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	requester, ok := h.RequireRequester(c)
	if !ok {
		return
	}

	resp, err := h.favoriteService.List(c.Request.Context(), h.GetDB(c), requester)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": resp})
}

func (h *FavoriteHandler) UpdateNote(c *gin.Context) {
	requester, ok := h.RequireRequester(c)
	if !ok {
		return
	}

	var req dto.UpdateFavoriteNoteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.favoriteService.UpdateNote(h.GetDB(c), requester, c.Param("creatorId"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note updated"})
}
