// File: internal/user/handler.go
package user

import (
	"bookinesia_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response messages, kept stable because the booking frontends match on them.
const (
	msgGetByUIDOK    = "Get user based on UID successful"
	msgGetByUIDErr   = "ERROR: fetching user data by UID"
	msgGetByEmailOK  = "Get user based on email successful"
	msgGetByEmailErr = "ERROR: fetching user data by Email"
	msgGetByPhoneOK  = "Get user based on phone successful"
	msgGetByPhoneErr = "ERROR: fetching user data by Phone"
	msgUpdateOK      = "Update user profile successful"
	msgUpdateErr     = "ERROR: update user profile"
)

// Handler struct holds dependencies for user handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new user handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for identity gateway operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	userGroup := router.Group("/users")
	{
		userGroup.POST("/by-uid", h.getUserBasedOnUID)
		userGroup.POST("/by-email", h.getUserBasedOnEmail)
		userGroup.POST("/by-phone", h.getUserBasedOnPhone)
		userGroup.POST("/profile/phone", h.adminUpdateUserProfile)
	}
}

func (h *Handler) getUserBasedOnUID(c *gin.Context) {
	var req LookupUIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("User lookup by UID: invalid request body", zap.Error(err))
		common.RespondError(c, msgGetByUIDErr, common.BindingError(err), nil)
		return
	}
	profile, err := h.service.GetByUID(c.Request.Context(), req.UID)
	if err != nil {
		h.logger.Warn("User lookup by UID failed", zap.String("uid", req.UID), zap.Error(err))
		common.RespondError(c, msgGetByUIDErr, err, nil)
		return
	}
	common.RespondOK(c, msgGetByUIDOK, gin.H{"user": profile})
}

func (h *Handler) getUserBasedOnEmail(c *gin.Context) {
	var req LookupEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("User lookup by email: invalid request body", zap.Error(err))
		common.RespondError(c, msgGetByEmailErr, common.BindingError(err), nil)
		return
	}
	profile, err := h.service.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.logger.Warn("User lookup by email failed", zap.String("email", req.Email), zap.Error(err))
		common.RespondError(c, msgGetByEmailErr, err, nil)
		return
	}
	common.RespondOK(c, msgGetByEmailOK, gin.H{"user": profile})
}

func (h *Handler) getUserBasedOnPhone(c *gin.Context) {
	var req LookupPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("User lookup by phone: invalid request body", zap.Error(err))
		common.RespondError(c, msgGetByPhoneErr, common.BindingError(err), nil)
		return
	}
	profile, err := h.service.GetByPhone(c.Request.Context(), req.Phone)
	if err != nil {
		h.logger.Warn("User lookup by phone failed", zap.String("phone", req.Phone), zap.Error(err))
		common.RespondError(c, msgGetByPhoneErr, err, nil)
		return
	}
	common.RespondOK(c, msgGetByPhoneOK, gin.H{"user": profile})
}

// adminUpdateUserProfile updates only the phone number of the given user. The
// submitted phone is echoed back on success and failure alike.
func (h *Handler) adminUpdateUserProfile(c *gin.Context) {
	var req UpdatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Profile update: invalid request body", zap.Error(err))
		common.RespondError(c, msgUpdateErr, common.BindingError(err), gin.H{"phone": req.Phone})
		return
	}
	profile, err := h.service.UpdatePhone(c.Request.Context(), req.UID, req.Phone)
	if err != nil {
		h.logger.Warn("Profile update failed", zap.String("uid", req.UID), zap.Error(err))
		common.RespondError(c, msgUpdateErr, err, gin.H{"phone": req.Phone})
		return
	}
	common.RespondOK(c, msgUpdateOK, gin.H{"user": profile, "phone": req.Phone})
}
