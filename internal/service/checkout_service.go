package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"smart-trolley-be/internal/config"
	"smart-trolley-be/internal/dto"
	"smart-trolley-be/internal/pkg/logger"
	"smart-trolley-be/internal/repository/memory"
	"smart-trolley-be/pkg/events"
	"smart-trolley-be/pkg/store"
)

var (
	ErrEmptyList      = errors.New("shopping list is empty")
	ErrInvalidPayment = errors.New("invalid payment details")
)

type ICheckoutService interface {
	GetSummary(ctx context.Context, sessionId uuid.UUID) (*dto.OrderSummaryResponse, error)
	Pay(ctx context.Context, req *dto.PaymentRequest) (*dto.PaymentResponse, error)
}

type checkoutService struct {
	sessions  memory.ISessionRepository
	cfg       config.PaymentConfig
	publisher IPublisherService
	logger    logger.ILogger
}

func NewCheckoutService(
	sessions memory.ISessionRepository,
	cfg config.PaymentConfig,
	publisher IPublisherService,
	logger logger.ILogger,
) ICheckoutService {
	return &checkoutService{
		sessions:  sessions,
		cfg:       cfg,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *checkoutService) GetSummary(ctx context.Context, sessionId uuid.UUID) (*dto.OrderSummaryResponse, error) {
	session, found := s.sessions.Get(sessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()

	return s.buildSummary(sessionLines(session.Items)), nil
}

type orderLine struct {
	name     string
	quantity int
	price    float64
}

func sessionLines(items []store.ListItem) []orderLine {
	lines := make([]orderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, orderLine{
			name:     item.Name,
			quantity: item.Quantity,
			price:    item.Price,
		})
	}
	return lines
}

func (s *checkoutService) buildSummary(lines []orderLine) *dto.OrderSummaryResponse {
	out := &dto.OrderSummaryResponse{
		Items:    make([]dto.OrderLineDTO, 0, len(lines)),
		Currency: "USD",
	}
	for _, line := range lines {
		lineSum := round2(line.price * float64(line.quantity))
		out.Items = append(out.Items, dto.OrderLineDTO{
			Name:     line.name,
			Quantity: line.quantity,
			Price:    line.price,
			LineSum:  lineSum,
		})
		out.Subtotal += lineSum
	}
	out.Subtotal = round2(out.Subtotal)
	out.Tax = round2(out.Subtotal * s.cfg.TaxRate)
	out.Total = round2(out.Subtotal + out.Tax)
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Pay validates the method details, settles the order and clears the list.
// The simulated gateway waits for the configured processing delay and can be
// cancelled through the context. The midtrans gateway returns a pending Snap
// token instead; settlement happens in the Snap flow and the list is only
// cleared once a simulated payment succeeds.
func (s *checkoutService) Pay(ctx context.Context, req *dto.PaymentRequest) (*dto.PaymentResponse, error) {
	session, found := s.sessions.Get(req.SessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	if err := validateMethod(req); err != nil {
		return nil, err
	}

	session.Lock()
	if len(session.Items) == 0 {
		session.Unlock()
		return nil, ErrEmptyList
	}
	summary := s.buildSummary(sessionLines(session.Items))
	session.Unlock()

	if s.cfg.Gateway == "midtrans" && s.cfg.MidtransServerKey != "" {
		return s.payWithMidtrans(req, summary)
	}

	// Simulated settlement with a cancellable processing window.
	delay := time.Duration(s.cfg.ProcessingDelayMs) * time.Millisecond
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(delay):
	}

	session.Lock()
	session.ClearAfterPayment()
	session.Unlock()

	evt := events.NewSessionEvent(events.TypePaymentCompleted, session.Id, map[string]interface{}{
		"amount":   summary.Total,
		"currency": summary.Currency,
		"method":   req.Method,
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("checkout", "Failed to publish payment event", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.logger.Info("checkout", "Payment settled", map[string]interface{}{
		"session_id": session.Id.String(),
		"amount":     summary.Total,
		"method":     req.Method,
	})

	return &dto.PaymentResponse{
		Status: "success",
		Paid:   summary.Total,
		Method: req.Method,
	}, nil
}

func (s *checkoutService) payWithMidtrans(req *dto.PaymentRequest, summary *dto.OrderSummaryResponse) (*dto.PaymentResponse, error) {
	var sClient snap.Client
	env := midtrans.Sandbox
	if s.cfg.MidtransEnv == "production" {
		env = midtrans.Production
	}
	sClient.New(s.cfg.MidtransServerKey, env)

	items, grossCents := snapItemLines(summary)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.SessionId.String(),
			GrossAmt: grossCents,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Items:           &items,
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	return &dto.PaymentResponse{
		Status:          "pending",
		Paid:            summary.Total,
		Method:          req.Method,
		SnapToken:       snapResp.Token,
		SnapRedirectUrl: snapResp.RedirectURL,
	}, nil
}

// snapItemLines converts an order summary into Snap item details. Snap
// rejects requests whose gross amount differs from the sum of the item
// lines, so tax gets its own line and the gross is accumulated from the
// lines rather than recomputed from the rounded total.
func snapItemLines(summary *dto.OrderSummaryResponse) ([]midtrans.ItemDetails, int64) {
	items := make([]midtrans.ItemDetails, 0, len(summary.Items)+1)
	var grossCents int64
	for i, line := range summary.Items {
		cents := int64(math.Round(line.LineSum * 100))
		items = append(items, midtrans.ItemDetails{
			ID:    fmt.Sprintf("line-%d", i),
			Name:  line.Name,
			Price: cents,
			Qty:   1,
		})
		grossCents += cents
	}
	if taxCents := int64(math.Round(summary.Tax * 100)); taxCents > 0 {
		items = append(items, midtrans.ItemDetails{
			ID:    "tax",
			Name:  "Tax",
			Price: taxCents,
			Qty:   1,
		})
		grossCents += taxCents
	}
	return items, grossCents
}

func validateMethod(req *dto.PaymentRequest) error {
	switch req.Method {
	case "qpay":
		if req.QpayPhone == "" {
			return fmt.Errorf("%w: qpay requires a phone number", ErrInvalidPayment)
		}
	case "card":
		if req.CardNumber == "" || req.CardExpiry == "" || req.CardCvv == "" || req.CardName == "" {
			return fmt.Errorf("%w: card requires number, expiry, cvv and holder name", ErrInvalidPayment)
		}
	case "wallet":
		return fmt.Errorf("%w: wallet payments are not available yet", ErrInvalidPayment)
	default:
		return fmt.Errorf("%w: unsupported method %q", ErrInvalidPayment, req.Method)
	}
	return nil
}
