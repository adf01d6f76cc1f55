package notification

import (
	"context"
	"errors"
	"testing"

	"bookinesia_backend/internal/common"
	"bookinesia_backend/internal/config"
	"bookinesia_backend/internal/mail"
	"bookinesia_backend/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSender records envelopes instead of dialing SMTP.
type mockSender struct {
	sent []mail.Envelope
	fail error
}

func (m *mockSender) Send(env mail.Envelope) (string, error) {
	if m.fail != nil {
		return "", m.fail
	}
	m.sent = append(m.sent, env)
	return "delivered to " + env.To, nil
}

func newTestDispatcher(t *testing.T) (*ServiceImplementation, *mockSender) {
	t.Helper()
	cfg := &config.Config{
		SenderName:    "Bookinesia",
		SenderAddress: "no-reply@bookinesia.com",
		TemplatesDir:  "../../templates",
	}
	store, err := mail.NewTemplateStore(cfg, logger.NewDefaultLogger())
	require.NoError(t, err)

	sender := &mockSender{}
	return NewService(store, sender, cfg, logger.NewDefaultLogger()), sender
}

func skipRequest() QueueSkipRequest {
	return QueueSkipRequest{
		Name:          "ana",
		Email:         "a@x.com",
		TransactionID: "trx-42",
		Date:          "2019-04-05",
		ShopName:      "the grand shop",
		ShopLogo:      "https://cdn.example.com/logo.png",
		BranchName:    "downtown branch",
		QueueNo:       "A12",
		StaffName:     "Budi",
		StaffImage:    "https://cdn.example.com/budi.png",
		Phone:         "+62811111",
	}
}

func TestSendWelcome(t *testing.T) {
	svc, sender := newTestDispatcher(t)

	info, err := svc.SendWelcome(context.Background(), WelcomeRequest{Name: "ana", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "delivered to a@x.com", info)

	require.Len(t, sender.sent, 1)
	env := sender.sent[0]
	assert.Equal(t, "Bookinesia", env.FromName)
	assert.Equal(t, "no-reply@bookinesia.com", env.FromAddress)
	assert.Equal(t, "a@x.com", env.To)
	assert.Equal(t, "Welcome To Bookinesia, Ana", env.Subject)
	assert.Contains(t, env.HTMLBody, "Welcome, Ana!")
}

func TestSendWelcomeSenderFailure(t *testing.T) {
	svc, sender := newTestDispatcher(t)
	sender.fail = errors.New("relay rejected the message")

	_, err := svc.SendWelcome(context.Background(), WelcomeRequest{Name: "ana", Email: "a@x.com"})
	require.Error(t, err)

	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "MAIL_DISPATCH_FAILED", apiErr.Code)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestSendQueueSkip(t *testing.T) {
	svc, sender := newTestDispatcher(t)

	_, err := svc.SendQueueSkip(context.Background(), skipRequest())
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	env := sender.sent[0]
	assert.Equal(t, "Bookinesia Notification: Your queue number has been skipped !", env.Subject)
	// 2019-04-05 was a Friday; the body carries the long date form.
	assert.Contains(t, env.HTMLBody, "Friday, 5 April 2019")
	assert.Contains(t, env.HTMLBody, "trx-42")
	assert.Contains(t, env.HTMLBody, "A12")
	assert.Contains(t, env.HTMLBody, "+62811111")
}

func TestSendQueueSkipBadDate(t *testing.T) {
	svc, sender := newTestDispatcher(t)

	req := skipRequest()
	req.Date = "05/04/2019"
	_, err := svc.SendQueueSkip(context.Background(), req)
	require.Error(t, err)

	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "INVALID_ARGUMENT", apiErr.Code)
	assert.Empty(t, sender.sent, "nothing is submitted when the date is invalid")
}

func TestSendQueueReminder(t *testing.T) {
	svc, sender := newTestDispatcher(t)

	req := QueueReminderRequest{
		Name:          "ana",
		Email:         "a@x.com",
		TransactionID: "trx-42",
		Date:          "2019-04-05",
		ShopName:      "the grand shop",
		ShopLogo:      "https://cdn.example.com/logo.png",
		BranchName:    "downtown branch",
		QueueNo:       "A12",
		StaffName:     "Budi",
		StaffImage:    "https://cdn.example.com/budi.png",
		CurrentQueue:  "A09",
		Text:          "Three numbers to go, please head to the branch.",
		Category:      "haircut",
	}
	_, err := svc.SendQueueReminder(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	env := sender.sent[0]
	// Shop and branch names are capitalized in the subject but bound raw in the body.
	assert.Equal(t, "Bookinesia Reminder: Your haircut appointment on Fri Apr 05 2019 at The Grand Shop, Downtown Branch", env.Subject)
	assert.Contains(t, env.HTMLBody, "the grand shop")
	assert.Contains(t, env.HTMLBody, "A09")
	assert.Contains(t, env.HTMLBody, "Three numbers to go")
}

func TestSendTransactionReceipt(t *testing.T) {
	svc, sender := newTestDispatcher(t)

	req := TransactionReceiptRequest{
		Name:          "ana",
		Email:         "a@x.com",
		TransactionID: "trx-42",
		Date:          "2019-04-05",
		ShopName:      "the grand shop",
		ShopLogo:      "https://cdn.example.com/logo.png",
		BranchName:    "downtown branch",
		QueueNo:       "A12",
		StaffName:     "Budi",
		StaffImage:    "https://cdn.example.com/budi.png",
		Services: []ServiceLineItem{
			{Name: "Haircut", Description: "Classic cut", Currency: "USD", Price: 100},
			{Name: "Shave", Description: "Hot towel", Currency: "USD", Price: 50},
		},
	}
	_, err := svc.SendTransactionReceipt(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	env := sender.sent[0]
	assert.Equal(t, "Bookinesia transaction receipt at The Grand Shop, Downtown Branch on Fri Apr 05 2019", env.Subject)
	assert.Contains(t, env.HTMLBody, "100.00")
	assert.Contains(t, env.HTMLBody, "50.00")
	assert.Contains(t, env.HTMLBody, "USD 150.00")
}

func TestSendTransactionReceiptEmptyServices(t *testing.T) {
	svc, sender := newTestDispatcher(t)

	req := TransactionReceiptRequest{
		Name:          "ana",
		Email:         "a@x.com",
		TransactionID: "trx-42",
		Date:          "2019-04-05",
		ShopName:      "shop",
		ShopLogo:      "logo",
		BranchName:    "branch",
		QueueNo:       "A1",
		StaffName:     "Budi",
		StaffImage:    "img",
		Services:      []ServiceLineItem{},
	}
	_, err := svc.SendTransactionReceipt(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].HTMLBody, "0.00")
}

func TestSendTransactionReceiptMixedCurrencyTakesLast(t *testing.T) {
	svc, sender := newTestDispatcher(t)

	req := TransactionReceiptRequest{
		Name:          "ana",
		Email:         "a@x.com",
		TransactionID: "trx-42",
		Date:          "2019-04-05",
		ShopName:      "shop",
		ShopLogo:      "logo",
		BranchName:    "branch",
		QueueNo:       "A1",
		StaffName:     "Budi",
		StaffImage:    "img",
		Services: []ServiceLineItem{
			{Name: "Haircut", Currency: "USD", Price: 100},
			{Name: "Shave", Currency: "IDR", Price: 50},
		},
	}
	_, err := svc.SendTransactionReceipt(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].HTMLBody, "IDR 150.00")
}

func TestSendBookingReceipt(t *testing.T) {
	svc, sender := newTestDispatcher(t)

	req := BookingReceiptRequest{
		Name:          "ana",
		Email:         "a@x.com",
		TransactionID: "trx-42",
		Date:          "2019-04-05",
		ShopName:      "the grand shop",
		ShopLogo:      "https://cdn.example.com/logo.png",
		BranchName:    "downtown branch",
		QueueNo:       "A12",
		StaffName:     "Budi",
		StaffImage:    "https://cdn.example.com/budi.png",
	}
	_, err := svc.SendBookingReceipt(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	env := sender.sent[0]
	assert.Equal(t, "Bookinesia queue receipt for an appointment on Fri Apr 05 2019 at The Grand Shop, Downtown Branch", env.Subject)
	assert.Contains(t, env.HTMLBody, "A12")
}

func TestDispatchIsNotIdempotent(t *testing.T) {
	svc, sender := newTestDispatcher(t)

	req := WelcomeRequest{Name: "ana", Email: "a@x.com"}
	_, err := svc.SendWelcome(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.SendWelcome(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, sender.sent, 2, "each call submits a fresh message")
}
