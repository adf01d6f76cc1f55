package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookinesia_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockService lets handler tests steer the dispatch outcome per call.
type mockService struct {
	info string
	err  error
}

func (m *mockService) SendWelcome(context.Context, WelcomeRequest) (string, error) {
	return m.info, m.err
}
func (m *mockService) SendQueueSkip(context.Context, QueueSkipRequest) (string, error) {
	return m.info, m.err
}
func (m *mockService) SendQueueReminder(context.Context, QueueReminderRequest) (string, error) {
	return m.info, m.err
}
func (m *mockService) SendTransactionReceipt(context.Context, TransactionReceiptRequest) (string, error) {
	return m.info, m.err
}
func (m *mockService) SendBookingReceipt(context.Context, BookingReceiptRequest) (string, error) {
	return m.info, m.err
}

func newTestRouter(t *testing.T, svc Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, _ := zap.NewDevelopment()
	handler := NewHandler(svc, logger)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doPost(t *testing.T, router *gin.Engine, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return w, payload
}

func TestSendWelcomeHandlerSuccess(t *testing.T) {
	router := newTestRouter(t, &mockService{info: "delivered to a@x.com"})

	w, payload := doPost(t, router, "/api/v1/emails/welcome", gin.H{
		"name":  "ana",
		"email": "a@x.com",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Customer Welcome Message is sent", payload["message"])
	assert.Equal(t, "delivered to a@x.com", payload["messageInfo"])
}

func TestSendWelcomeHandlerMissingName(t *testing.T) {
	router := newTestRouter(t, &mockService{})

	w, payload := doPost(t, router, "/api/v1/emails/welcome", gin.H{"email": "a@x.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ERROR: Customer Welcome Message not sent", payload["message"])
	errObj, ok := payload["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "MISSING_FIELD", errObj["code"])
}

func TestSendWelcomeHandlerDispatchFailure(t *testing.T) {
	router := newTestRouter(t, &mockService{err: common.ErrMailDispatch.WithDetails("relay down")})

	w, payload := doPost(t, router, "/api/v1/emails/welcome", gin.H{
		"name":  "ana",
		"email": "a@x.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ERROR: Customer Welcome Message not sent", payload["message"])
	assert.NotContains(t, payload, "messageInfo")
}

func TestSendWelcomeHandlerMalformedJSON(t *testing.T) {
	router := newTestRouter(t, &mockService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/emails/welcome", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendQueueSkipHandlerSuccess(t *testing.T) {
	router := newTestRouter(t, &mockService{info: "delivered to a@x.com"})

	w, payload := doPost(t, router, "/api/v1/emails/queue-skip", gin.H{
		"name": "ana", "email": "a@x.com", "transactionId": "trx-1",
		"date": "2019-04-05", "shopName": "shop", "shopLogo": "logo",
		"branchName": "branch", "queueNo": "A1", "staffName": "Budi",
		"staffImage": "img", "phone": "+62811",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Shop Skip Transaction Message is sent", payload["message"])
}

func TestSendQueueReminderHandlerMissingCategory(t *testing.T) {
	router := newTestRouter(t, &mockService{})

	w, payload := doPost(t, router, "/api/v1/emails/queue-reminder", gin.H{
		"name": "ana", "email": "a@x.com", "transactionId": "trx-1",
		"date": "2019-04-05", "shopName": "shop", "shopLogo": "logo",
		"branchName": "branch", "queueNo": "A1", "staffName": "Budi",
		"staffImage": "img", "currentQueue": "A0", "text": "soon",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ERROR: Reminder Message not sent", payload["message"])
}

func TestSendTransactionReceiptHandlerSuccess(t *testing.T) {
	router := newTestRouter(t, &mockService{info: "delivered to a@x.com"})

	w, payload := doPost(t, router, "/api/v1/emails/transaction-receipt", gin.H{
		"name": "ana", "email": "a@x.com", "transactionId": "trx-1",
		"date": "2019-04-05", "shopName": "shop", "shopLogo": "logo",
		"branchName": "branch", "queueNo": "A1", "staffName": "Budi",
		"staffImage": "img",
		"service": []gin.H{
			{"name": "Haircut", "description": "cut", "currency": "USD", "price": 100},
			{"name": "Shave", "description": "towel", "currency": "USD", "price": 50},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Shop Finish Transaction Message is sent", payload["message"])
}

func TestSendBookingReceiptHandlerSuccess(t *testing.T) {
	router := newTestRouter(t, &mockService{info: "delivered to a@x.com"})

	w, payload := doPost(t, router, "/api/v1/emails/booking-receipt", gin.H{
		"name": "ana", "email": "a@x.com", "transactionId": "trx-1",
		"date": "2019-04-05", "shopName": "shop", "shopLogo": "logo",
		"branchName": "branch", "queueNo": "A1", "staffName": "Budi",
		"staffImage": "img",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Booking Receipt Message is sent", payload["message"])
}
