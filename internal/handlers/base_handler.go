package handlers

import (
	"fmt"
	"strconv"

	"neads_backend/internal/logger"
	"neads_backend/internal/models"
	"neads_backend/internal/services"
	"neads_backend/internal/validator"
	"neads_backend/pkg/apperrors"
	"neads_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// GetDB extracts the *gorm.DB (pool or transaction) that DBMiddleware
// put into the gin context. Every handler that touches a service goes
// through this.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "db key not found in context", "key", dbKey)
		// Only reachable when DBMiddleware is missing from the chain,
		// which is a wiring bug.
		panic("DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "db in context has wrong type", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("db in context has incorrect type")
	}

	return db
}

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// GetRequester returns the authenticated caller, or nil on endpoints
// where auth is optional.
func (h *BaseHandler) GetRequester(c *gin.Context) *services.Requester {
	userIDVal, exists := c.Get("userID")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return nil
	}

	role := models.UserRole("")
	if roleVal, exists := c.Get("userRole"); exists {
		if roleStr, ok := roleVal.(string); ok {
			role = models.UserRole(roleStr)
		}
	}

	return &services.Requester{UserID: userID, Role: role}
}

// RequireRequester is GetRequester for endpoints behind AuthMiddleware.
// Answers 401 and returns false when no user is present.
func (h *BaseHandler) RequireRequester(c *gin.Context) (services.Requester, bool) {
	requester := h.GetRequester(c)
	if requester == nil {
		logger.CtxWarn(c.Request.Context(), "Unauthorized access: no user in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return services.Requester{}, false
	}
	return *requester, true
}

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// ParseQueryFloat reports whether the parameter was present and valid.
func ParseQueryFloat(c *gin.Context, key string) (float64, bool) {
	valueStr := c.Query(key)
	if valueStr == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
