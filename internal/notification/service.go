// File: internal/notification/service.go
package notification

import (
	"context"
	"fmt"

	"bookinesia_backend/internal/common"
	"bookinesia_backend/internal/config"
	"bookinesia_backend/internal/format"
	"bookinesia_backend/internal/mail"

	"go.uber.org/zap"
)

// Service dispatches one email per call and reports provider delivery info.
type Service interface {
	SendWelcome(ctx context.Context, req WelcomeRequest) (string, error)
	SendQueueSkip(ctx context.Context, req QueueSkipRequest) (string, error)
	SendQueueReminder(ctx context.Context, req QueueReminderRequest) (string, error)
	SendTransactionReceipt(ctx context.Context, req TransactionReceiptRequest) (string, error)
	SendBookingReceipt(ctx context.Context, req BookingReceiptRequest) (string, error)
}

// Typed template views; the field names are the placeholder names inside the
// HTML templates.
type welcomeView struct {
	Name string
}

type transactionView struct {
	Name          string
	TransactionID string
	Date          string
	ShopName      string
	ShopLogo      string
	BranchName    string
	QueueNo       string
	StaffName     string
	StaffImage    string
	Phone         string
	CurrentQueue  string
	Text          string
	Category      string
}

type lineItemView struct {
	Name        string
	Description string
	Currency    string
	Price       string
}

type receiptView struct {
	transactionView
	Services    []lineItemView
	TotalAmount string
	Currency    string
}

// ServiceImplementation renders templates and submits envelopes through the
// configured sender.
type ServiceImplementation struct {
	templates *mail.TemplateStore
	sender    mail.Sender
	cfg       *config.Config
	logger    *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates the notification dispatcher.
func NewService(templates *mail.TemplateStore, sender mail.Sender, cfg *config.Config, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		templates: templates,
		sender:    sender,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *ServiceImplementation) SendWelcome(ctx context.Context, req WelcomeRequest) (string, error) {
	name := format.CapitalizeWords(req.Name)
	subject := fmt.Sprintf("Welcome To Bookinesia, %s", name)
	return s.dispatch(mail.KindWelcome, req.Email, subject, welcomeView{Name: name})
}

func (s *ServiceImplementation) SendQueueSkip(ctx context.Context, req QueueSkipRequest) (string, error) {
	date, err := format.ParseDate(req.Date)
	if err != nil {
		return "", err
	}
	view := transactionView{
		Name:          req.Name,
		TransactionID: req.TransactionID,
		Date:          format.LongDate(date),
		ShopName:      req.ShopName,
		ShopLogo:      req.ShopLogo,
		BranchName:    req.BranchName,
		QueueNo:       req.QueueNo,
		StaffName:     req.StaffName,
		StaffImage:    req.StaffImage,
		Phone:         req.Phone,
	}
	subject := "Bookinesia Notification: Your queue number has been skipped !"
	return s.dispatch(mail.KindQueueSkip, req.Email, subject, view)
}

func (s *ServiceImplementation) SendQueueReminder(ctx context.Context, req QueueReminderRequest) (string, error) {
	date, err := format.ParseDate(req.Date)
	if err != nil {
		return "", err
	}
	view := transactionView{
		Name:          req.Name,
		TransactionID: req.TransactionID,
		Date:          format.LongDate(date),
		ShopName:      req.ShopName,
		ShopLogo:      req.ShopLogo,
		BranchName:    req.BranchName,
		QueueNo:       req.QueueNo,
		StaffName:     req.StaffName,
		StaffImage:    req.StaffImage,
		CurrentQueue:  req.CurrentQueue,
		Text:          req.Text,
		Category:      req.Category,
	}
	subject := fmt.Sprintf("Bookinesia Reminder: Your %s appointment on %s at %s, %s",
		req.Category,
		format.SubjectDate(date),
		format.CapitalizeWords(req.ShopName),
		format.CapitalizeWords(req.BranchName),
	)
	return s.dispatch(mail.KindQueueReminder, req.Email, subject, view)
}

func (s *ServiceImplementation) SendTransactionReceipt(ctx context.Context, req TransactionReceiptRequest) (string, error) {
	date, err := format.ParseDate(req.Date)
	if err != nil {
		return "", err
	}

	// Display currency follows the last line item; callers guarantee all
	// items share one currency.
	var currency string
	services := make([]lineItemView, 0, len(req.Services))
	prices := make([]float64, 0, len(req.Services))
	for _, item := range req.Services {
		currency = item.Currency
		prices = append(prices, item.Price)
		services = append(services, lineItemView{
			Name:        item.Name,
			Description: item.Description,
			Currency:    item.Currency,
			Price:       format.Money(item.Price),
		})
	}

	view := receiptView{
		transactionView: transactionView{
			Name:          req.Name,
			TransactionID: req.TransactionID,
			Date:          format.LongDate(date),
			ShopName:      req.ShopName,
			ShopLogo:      req.ShopLogo,
			BranchName:    req.BranchName,
			QueueNo:       req.QueueNo,
			StaffName:     req.StaffName,
			StaffImage:    req.StaffImage,
		},
		Services:    services,
		TotalAmount: format.Money(format.TotalTransaction(prices)),
		Currency:    currency,
	}
	subject := fmt.Sprintf("Bookinesia transaction receipt at %s, %s on %s",
		format.CapitalizeWords(req.ShopName),
		format.CapitalizeWords(req.BranchName),
		format.SubjectDate(date),
	)
	return s.dispatch(mail.KindTransactionReceipt, req.Email, subject, view)
}

func (s *ServiceImplementation) SendBookingReceipt(ctx context.Context, req BookingReceiptRequest) (string, error) {
	date, err := format.ParseDate(req.Date)
	if err != nil {
		return "", err
	}
	view := transactionView{
		Name:          req.Name,
		TransactionID: req.TransactionID,
		Date:          format.LongDate(date),
		ShopName:      req.ShopName,
		ShopLogo:      req.ShopLogo,
		BranchName:    req.BranchName,
		QueueNo:       req.QueueNo,
		StaffName:     req.StaffName,
		StaffImage:    req.StaffImage,
	}
	subject := fmt.Sprintf("Bookinesia queue receipt for an appointment on %s at %s, %s",
		format.SubjectDate(date),
		format.CapitalizeWords(req.ShopName),
		format.CapitalizeWords(req.BranchName),
	)
	return s.dispatch(mail.KindBookingReceipt, req.Email, subject, view)
}

// dispatch renders the template for the kind and submits the envelope. Every
// failure surfaces as a MAIL_DISPATCH_FAILED so the handler layer maps it to a
// single 400.
func (s *ServiceImplementation) dispatch(kind mail.Kind, to, subject string, view interface{}) (string, error) {
	htmlBody, err := s.templates.Render(kind, view)
	if err != nil {
		s.logger.Error("Template render failed", zap.String("kind", string(kind)), zap.Error(err))
		return "", common.ErrMailDispatch.WithDetails(err.Error())
	}

	info, err := s.sender.Send(mail.Envelope{
		FromName:    s.cfg.SenderName,
		FromAddress: s.cfg.SenderAddress,
		To:          to,
		Subject:     subject,
		HTMLBody:    htmlBody,
	})
	if err != nil {
		return "", common.ErrMailDispatch.WithDetails(err.Error())
	}
	return info, nil
}
