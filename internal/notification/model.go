// File: internal/notification/model.go

// Package notification renders and dispatches the transactional emails of the
// queue-booking flow. Every request is a one-shot: extract fields, derive the
// presentation strings, bind the matching template, submit to the mail
// provider. Nothing is stored and nothing is retried.
package notification

// ServiceLineItem is one billed service on a transaction receipt. All items in
// a request are expected to share one currency; the dispatcher displays the
// last-seen currency and does not validate uniformity.
type ServiceLineItem struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Currency    string  `json:"currency" binding:"required"`
	Price       float64 `json:"price"`
}

// WelcomeRequest triggers the account welcome message.
type WelcomeRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// QueueSkipRequest notifies a customer that their queue number was skipped.
type QueueSkipRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	TransactionID string `json:"transactionId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	ShopName      string `json:"shopName" binding:"required"`
	ShopLogo      string `json:"shopLogo" binding:"required"`
	BranchName    string `json:"branchName" binding:"required"`
	QueueNo       string `json:"queueNo" binding:"required"`
	StaffName     string `json:"staffName" binding:"required"`
	StaffImage    string `json:"staffImage" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
}

// QueueReminderRequest reminds a customer that their turn is approaching.
type QueueReminderRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	TransactionID string `json:"transactionId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	ShopName      string `json:"shopName" binding:"required"`
	ShopLogo      string `json:"shopLogo" binding:"required"`
	BranchName    string `json:"branchName" binding:"required"`
	QueueNo       string `json:"queueNo" binding:"required"`
	StaffName     string `json:"staffName" binding:"required"`
	StaffImage    string `json:"staffImage" binding:"required"`
	CurrentQueue  string `json:"currentQueue" binding:"required"`
	Text          string `json:"text" binding:"required"`
	Category      string `json:"category" binding:"required"`
}

// TransactionReceiptRequest sends the receipt for a finished transaction.
type TransactionReceiptRequest struct {
	Name          string            `json:"name" binding:"required"`
	Email         string            `json:"email" binding:"required,email"`
	TransactionID string            `json:"transactionId" binding:"required"`
	Date          string            `json:"date" binding:"required"`
	ShopName      string            `json:"shopName" binding:"required"`
	ShopLogo      string            `json:"shopLogo" binding:"required"`
	BranchName    string            `json:"branchName" binding:"required"`
	QueueNo       string            `json:"queueNo" binding:"required"`
	StaffName     string            `json:"staffName" binding:"required"`
	StaffImage    string            `json:"staffImage" binding:"required"`
	Services      []ServiceLineItem `json:"service" binding:"required,dive"`
}

// BookingReceiptRequest confirms a new booking and carries the queue number.
type BookingReceiptRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	TransactionID string `json:"transactionId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	ShopName      string `json:"shopName" binding:"required"`
	ShopLogo      string `json:"shopLogo" binding:"required"`
	BranchName    string `json:"branchName" binding:"required"`
	QueueNo       string `json:"queueNo" binding:"required"`
	StaffName     string `json:"staffName" binding:"required"`
	StaffImage    string `json:"staffImage" binding:"required"`
}
