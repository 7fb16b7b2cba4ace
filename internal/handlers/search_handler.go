package handlers

import (
	"net/http"

	"neads_backend/internal/middleware"
	"neads_backend/internal/models"
	"neads_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	creators := r.Group("/creators")
	creators.Use(middleware.OptionalAuthMiddleware())
	{
		creators.GET("", h.Gallery)
	}

	search := r.Group("/search")
	search.Use(middleware.OptionalAuthMiddleware())
	{
		search.GET("/creators", h.Search)
	}
}

// Gallery lists creators with filters; the free-text query matches
// names only.
func (h *SearchHandler) Gallery(c *gin.Context) {
	h.runSearch(c, false)
}

// Search is the gallery with the free-text query extended to the bio.
func (h *SearchHandler) Search(c *gin.Context) {
	h.runSearch(c, true)
}

func (h *SearchHandler) runSearch(c *gin.Context, includeBio bool) {
	criteria := models.ParseSearchCriteria(c.Request.URL.Query())
	criteria.IncludeBio = includeBio

	resp, err := h.searchService.Search(c.Request.Context(), h.GetDB(c), criteria, h.GetRequester(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
