package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"neads_backend/internal/middleware"
	"neads_backend/internal/models"
	"neads_backend/internal/services"
	"neads_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MapHandler struct {
	*BaseHandler
	geoService services.GeoService
}

func NewMapHandler(base *BaseHandler, geoService services.GeoService) *MapHandler {
	return &MapHandler{
		BaseHandler: base,
		geoService:  geoService,
	}
}

func (h *MapHandler) RegisterRoutes(r *gin.RouterGroup) {
	mapGroup := r.Group("/map")
	mapGroup.Use(middleware.OptionalAuthMiddleware())
	{
		mapGroup.GET("/creators", h.MapSearch)
	}
}

// MapSearch returns creators within radius km of lat/lng, closest
// first. lat and lng are required; an omitted radius defaults to 50 km
// but a malformed one is rejected.
func (h *MapHandler) MapSearch(c *gin.Context) {
	lat, latOK := ParseQueryFloat(c, "lat")
	lng, lngOK := ParseQueryFloat(c, "lng")
	if !latOK || !lngOK {
		apperrors.HandleError(c, apperrors.ErrInvalidCoordinates)
		return
	}

	var radius float64
	if raw := strings.TrimSpace(c.Query("radius")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid radius value"))
			return
		}
		radius = v
	}

	criteria := models.ParseSearchCriteria(c.Request.URL.Query())

	resp, err := h.geoService.MapSearch(c.Request.Context(), h.GetDB(c), lat, lng, radius, criteria, h.GetRequester(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
