// File: internal/notification/handler.go
package notification

import (
	"bookinesia_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response messages, one pair per email kind; the frontends match on them.
const (
	msgWelcomeOK   = "Customer Welcome Message is sent"
	msgWelcomeErr  = "ERROR: Customer Welcome Message not sent"
	msgSkipOK      = "Shop Skip Transaction Message is sent"
	msgSkipErr     = "ERROR: Shop Skip Transaction Message not sent"
	msgReminderOK  = "Reminder Message is sent"
	msgReminderErr = "ERROR: Reminder Message not sent"
	msgReceiptOK   = "Shop Finish Transaction Message is sent"
	msgReceiptErr  = "ERROR: Shop Finish Transaction Message not sent"
	msgBookingOK   = "Booking Receipt Message is sent"
	msgBookingErr  = "ERROR: Booking Receipt Message not sent"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for email dispatch operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	emailGroup := router.Group("/emails")
	{
		emailGroup.POST("/welcome", h.sendWelcome)
		emailGroup.POST("/queue-skip", h.sendQueueSkip)
		emailGroup.POST("/queue-reminder", h.sendQueueReminder)
		emailGroup.POST("/transaction-receipt", h.sendTransactionReceipt)
		emailGroup.POST("/booking-receipt", h.sendBookingReceipt)
	}
}

func (h *Handler) sendWelcome(c *gin.Context) {
	var req WelcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Welcome email: invalid request body", zap.Error(err))
		common.RespondError(c, msgWelcomeErr, common.BindingError(err), nil)
		return
	}
	info, err := h.service.SendWelcome(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("Welcome email dispatch failed", zap.String("to", req.Email), zap.Error(err))
		common.RespondError(c, msgWelcomeErr, err, nil)
		return
	}
	common.RespondOK(c, msgWelcomeOK, gin.H{"messageInfo": info})
}

func (h *Handler) sendQueueSkip(c *gin.Context) {
	var req QueueSkipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Queue skip email: invalid request body", zap.Error(err))
		common.RespondError(c, msgSkipErr, common.BindingError(err), nil)
		return
	}
	info, err := h.service.SendQueueSkip(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("Queue skip email dispatch failed", zap.String("to", req.Email), zap.Error(err))
		common.RespondError(c, msgSkipErr, err, nil)
		return
	}
	common.RespondOK(c, msgSkipOK, gin.H{"messageInfo": info})
}

func (h *Handler) sendQueueReminder(c *gin.Context) {
	var req QueueReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Queue reminder email: invalid request body", zap.Error(err))
		common.RespondError(c, msgReminderErr, common.BindingError(err), nil)
		return
	}
	info, err := h.service.SendQueueReminder(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("Queue reminder email dispatch failed", zap.String("to", req.Email), zap.Error(err))
		common.RespondError(c, msgReminderErr, err, nil)
		return
	}
	common.RespondOK(c, msgReminderOK, gin.H{"messageInfo": info})
}

func (h *Handler) sendTransactionReceipt(c *gin.Context) {
	var req TransactionReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Transaction receipt email: invalid request body", zap.Error(err))
		common.RespondError(c, msgReceiptErr, common.BindingError(err), nil)
		return
	}
	info, err := h.service.SendTransactionReceipt(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("Transaction receipt email dispatch failed", zap.String("to", req.Email), zap.Error(err))
		common.RespondError(c, msgReceiptErr, err, nil)
		return
	}
	common.RespondOK(c, msgReceiptOK, gin.H{"messageInfo": info})
}

func (h *Handler) sendBookingReceipt(c *gin.Context) {
	var req BookingReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Booking receipt email: invalid request body", zap.Error(err))
		common.RespondError(c, msgBookingErr, common.BindingError(err), nil)
		return
	}
	info, err := h.service.SendBookingReceipt(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("Booking receipt email dispatch failed", zap.String("to", req.Email), zap.Error(err))
		common.RespondError(c, msgBookingErr, err, nil)
		return
	}
	common.RespondOK(c, msgBookingOK, gin.H{"messageInfo": info})
}
