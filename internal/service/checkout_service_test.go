package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-trolley-be/internal/config"
	"smart-trolley-be/internal/dto"
	"smart-trolley-be/internal/repository/memory"
	"smart-trolley-be/pkg/events"
	"smart-trolley-be/pkg/store"
)

func newTestCheckout(t *testing.T) (ICheckoutService, memory.ISessionRepository, *recordingPublisher) {
	t.Helper()
	sessions := memory.NewSessionRepository()
	pub := &recordingPublisher{}
	svc := NewCheckoutService(sessions, config.PaymentConfig{
		Gateway:           "simulated",
		ProcessingDelayMs: 10,
		TaxRate:           0.08,
	}, pub, noopLogger{})
	return svc, sessions, pub
}

func seedCheckoutSession(sessions memory.ISessionRepository) *store.Session {
	session := &store.Session{
		Id:         uuid.New(),
		ActiveView: store.ViewCheckout,
		CreatedAt:  time.Now(),
		Items: []store.ListItem{
			{Id: uuid.New(), Name: "milk", Quantity: 2, Price: 4.99},
			{Id: uuid.New(), Name: "bread", Quantity: 1, Price: 3.50, Completed: true},
		},
	}
	sessions.Save(session)
	return session
}

func TestGetSummaryAppliesTax(t *testing.T) {
	svc, sessions, _ := newTestCheckout(t)
	session := seedCheckoutSession(sessions)

	summary, err := svc.GetSummary(context.Background(), session.Id)
	require.NoError(t, err)

	// 2*4.99 + 3.50 = 13.48
	assert.Equal(t, 13.48, summary.Subtotal)
	assert.Equal(t, 1.08, summary.Tax)
	assert.Equal(t, 14.56, summary.Total)
	assert.Equal(t, "USD", summary.Currency)
	require.Len(t, summary.Items, 2)
	assert.Equal(t, 9.98, summary.Items[0].LineSum)
}

func TestGetSummaryUnknownSession(t *testing.T) {
	svc, _, _ := newTestCheckout(t)
	_, err := svc.GetSummary(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPayValidationRules(t *testing.T) {
	svc, sessions, _ := newTestCheckout(t)
	session := seedCheckoutSession(sessions)

	tests := []struct {
		name string
		req  dto.PaymentRequest
	}{
		{"qpay without phone", dto.PaymentRequest{SessionId: session.Id, Method: "qpay"}},
		{"card missing cvv", dto.PaymentRequest{SessionId: session.Id, Method: "card", CardNumber: "4111111111111111", CardExpiry: "12/30", CardName: "A Shopper"}},
		{"wallet not available", dto.PaymentRequest{SessionId: session.Id, Method: "wallet"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Pay(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidPayment)
		})
	}
}

func TestPaySettlesAndClearsList(t *testing.T) {
	svc, sessions, pub := newTestCheckout(t)
	session := seedCheckoutSession(sessions)

	res, err := svc.Pay(context.Background(), &dto.PaymentRequest{
		SessionId: session.Id,
		Method:    "qpay",
		QpayPhone: "555-0100",
	})
	require.NoError(t, err)

	assert.Equal(t, "success", res.Status)
	assert.Equal(t, 14.56, res.Paid)
	assert.Equal(t, "qpay", res.Method)

	stored, found := sessions.Get(session.Id)
	require.True(t, found)
	stored.Lock()
	assert.Empty(t, stored.Items)
	assert.Nil(t, stored.Target)
	assert.Equal(t, store.ViewAssistant, stored.ActiveView)
	stored.Unlock()

	require.Len(t, pub.published, 1)
	assert.Equal(t, events.TypePaymentCompleted, pub.published[0].EventType())
}

func TestPayEmptyList(t *testing.T) {
	svc, sessions, _ := newTestCheckout(t)
	session := &store.Session{Id: uuid.New(), ActiveView: store.ViewCheckout, CreatedAt: time.Now()}
	sessions.Save(session)

	_, err := svc.Pay(context.Background(), &dto.PaymentRequest{
		SessionId: session.Id,
		Method:    "qpay",
		QpayPhone: "555-0100",
	})
	assert.ErrorIs(t, err, ErrEmptyList)
}

func TestPayCancelledByContext(t *testing.T) {
	sessions := memory.NewSessionRepository()
	pub := &recordingPublisher{}
	svc := NewCheckoutService(sessions, config.PaymentConfig{
		Gateway:           "simulated",
		ProcessingDelayMs: 5000,
		TaxRate:           0.08,
	}, pub, noopLogger{})
	session := seedCheckoutSession(sessions)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.Pay(ctx, &dto.PaymentRequest{
		SessionId: session.Id,
		Method:    "qpay",
		QpayPhone: "555-0100",
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Cancelled settlement must leave the list intact.
	stored, found := sessions.Get(session.Id)
	require.True(t, found)
	stored.Lock()
	assert.Len(t, stored.Items, 2)
	stored.Unlock()
	assert.Empty(t, pub.published)
}

func TestSnapItemLinesSumToGross(t *testing.T) {
	summary := &dto.OrderSummaryResponse{
		Items: []dto.OrderLineDTO{
			{Name: "milk", Quantity: 2, Price: 4.99, LineSum: 9.98},
			{Name: "bread", Quantity: 1, Price: 3.50, LineSum: 3.50},
		},
		Subtotal: 13.48,
		Tax:      1.08,
		Total:    14.56,
		Currency: "USD",
	}

	items, gross := snapItemLines(summary)

	// Snap validates gross against the sum of the item lines, tax included.
	require.Len(t, items, 3)
	var sum int64
	for _, item := range items {
		sum += item.Price * int64(item.Qty)
	}
	assert.Equal(t, sum, gross)
	assert.Equal(t, int64(1456), gross)

	tax := items[len(items)-1]
	assert.Equal(t, "tax", tax.ID)
	assert.Equal(t, int64(108), tax.Price)
}
